package store

import (
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"ny11/wellness-app/internal/catalog"
	"ny11/wellness-app/internal/clock"
	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/planner"

	"golang.org/x/crypto/bcrypt"
)

const testToday = "2026-10-15"

func newTestStore(t *testing.T) (*Store, *clock.Manual, *planner.Engine) {
	t.Helper()
	cat := catalog.Default()
	engine := planner.New(cat)
	clk := clock.NewManual(time.Date(2026, 10, 15, 9, 0, 0, 0, time.Local))
	return New(cat, engine, clk, DefaultTimings()), clk, engine
}

func completeProfile(goal domain.Goal) domain.ProfilePatch {
	age, weight, height := 30, 80.0, 180.0
	return domain.ProfilePatch{Age: &age, WeightKg: &weight, HeightCm: &height, Goal: &goal}
}

func registerJane(t *testing.T, s *Store) domain.User {
	t.Helper()
	u, ok := s.RegisterUser(domain.UserRegistration{Name: "Jane", Email: "jane@test.com", Phone: "555"})
	if !ok {
		t.Fatalf("registration failed")
	}
	return u
}

// --- Cart ---

func TestAddToCart_IncrementsExistingEntry(t *testing.T) {
	s, _, _ := newTestStore(t)

	if !s.AddToCart("m1") || !s.AddToCart("d1") {
		t.Fatalf("expected catalog items to be added")
	}
	for q := 2; q <= 4; q++ {
		if !s.AddToCart("m1") {
			t.Fatalf("expected increment to succeed")
		}
		cart := s.Cart()
		if len(cart) != 2 {
			t.Fatalf("expected 2 distinct entries, got %d", len(cart))
		}
		if cart[0].ID != "m1" || cart[0].Quantity != q {
			t.Fatalf("expected m1 x%d, got %s x%d", q, cart[0].ID, cart[0].Quantity)
		}
	}
}

func TestAddToCart_UnknownItem(t *testing.T) {
	s, _, _ := newTestStore(t)
	if s.AddToCart("nope") {
		t.Fatalf("expected unknown item to be rejected")
	}
	if len(s.Cart()) != 0 {
		t.Fatalf("cart changed on failed add")
	}
}

func TestRemoveAndClearCart(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.AddToCart("m1")
	s.AddToCart("m2")

	if !s.RemoveFromCart("m1") || s.RemoveFromCart("m1") {
		t.Fatalf("unexpected RemoveFromCart results")
	}
	if cart := s.Cart(); len(cart) != 1 || cart[0].ID != "m2" {
		t.Fatalf("unexpected cart after remove: %+v", cart)
	}
	s.ClearCart()
	if len(s.Cart()) != 0 {
		t.Fatalf("expected empty cart")
	}
}

// --- Session and profile ---

func TestLogin_CaseInsensitiveAndIncompleteProfileClearsPlan(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.UpdateDailyPlan("2026-10-01", domain.DailyPlan{})

	if !s.Login("JOHN@Test.com", "") {
		t.Fatalf("expected login to succeed")
	}
	st := s.Snapshot()
	if st.CurrentUser == nil || st.CurrentUser.ID != "user1" {
		t.Fatalf("expected user1 session, got %+v", st.CurrentUser)
	}
	// user1 has no goal, so the profile is incomplete.
	if len(st.Plan) != 0 {
		t.Fatalf("expected plan cleared, got %v", st.Plan)
	}
}

func TestLogin_CompleteProfileInstallsTodaysPlan(t *testing.T) {
	s, _, engine := newTestStore(t)
	registerJane(t, s)
	s.UpdateUserProfile(completeProfile(domain.GoalFitness))
	s.Logout()

	if !s.Login("jane@test.com", "") {
		t.Fatalf("expected login to succeed")
	}
	plan := s.Plan()
	if len(plan) != 1 {
		t.Fatalf("expected exactly today's entry, got %v", plan)
	}
	if !reflect.DeepEqual(plan[testToday], engine.Derive(domain.GoalFitness)) {
		t.Fatalf("expected fitness template for today")
	}
}

func TestLogin_UnknownEmailChangesNothing(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Login("john@test.com", "")
	s.UpdateDailyPlan(testToday, domain.DailyPlan{Exercises: []domain.Exercise{{Name: "Walk"}}})
	before := s.Snapshot()

	if s.Login("nobody@nowhere.test", "") {
		t.Fatalf("expected login to fail")
	}
	after := s.Snapshot()
	if after.CurrentUser == nil || after.CurrentUser.ID != before.CurrentUser.ID {
		t.Fatalf("current user changed on failed login")
	}
	if !reflect.DeepEqual(before.Plan, after.Plan) {
		t.Fatalf("plan changed on failed login")
	}
}

func TestLogin_PasswordChecked(t *testing.T) {
	s, _, _ := newTestStore(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.RegisterUser(domain.UserRegistration{Name: "Pat", Email: "pat@test.com", PasswordHash: string(hash)})
	s.Logout()

	if s.Login("pat@test.com", "wrong") {
		t.Fatalf("expected wrong password to fail")
	}
	if _, ok := s.CurrentUser(); ok {
		t.Fatalf("session started on wrong password")
	}
	if !s.Login("pat@test.com", "s3cret-pass") {
		t.Fatalf("expected correct password to succeed")
	}
}

func TestLogout_KeepsCartAndPlan(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Login("john@test.com", "")
	s.AddToCart("m1")
	s.UpdateDailyPlan(testToday, domain.DailyPlan{})

	s.Logout()
	st := s.Snapshot()
	if st.CurrentUser != nil {
		t.Fatalf("expected no session")
	}
	if len(st.Cart) != 1 || len(st.Plan) != 1 {
		t.Fatalf("logout should not clear cart or plan: %+v", st)
	}
}

func TestRegisterUser(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.UpdateDailyPlan(testToday, domain.DailyPlan{})
	u := registerJane(t, s)

	if u.Role != domain.RoleRegular || !strings.HasPrefix(u.ID, "user-") {
		t.Fatalf("unexpected user: %+v", u)
	}
	st := s.Snapshot()
	if st.CurrentUser == nil || st.CurrentUser.ID != u.ID {
		t.Fatalf("registered user is not the session user")
	}
	if len(st.Plan) != 0 {
		t.Fatalf("expected plan reset on registration")
	}
	if _, ok := s.RegisterUser(domain.UserRegistration{Name: "Jane 2", Email: "JANE@test.com"}); ok {
		t.Fatalf("expected duplicate email to be rejected")
	}
}

func TestRegisterCoach_PairsUserAndCoach(t *testing.T) {
	s, _, _ := newTestStore(t)
	u, ok := s.RegisterCoach(domain.CoachRegistration{
		Name:            "Omar Hassan",
		Email:           "omar@test.com",
		Specialty:       "Yoga",
		Bio:             "Flexibility first.",
		ExperienceYears: 4,
		ClientsHelped:   120,
		Avatar:          "https://example.com/omar.jpg",
	})
	if !ok {
		t.Fatalf("expected coach registration to succeed")
	}
	if u.Role != domain.RoleCoach {
		t.Fatalf("expected coach role, got %s", u.Role)
	}

	st := s.Snapshot()
	var paired *domain.Coach
	for i := range st.Coaches {
		if st.Coaches[i].ID == u.ID {
			paired = &st.Coaches[i]
		}
	}
	if paired == nil {
		t.Fatalf("no coach record shares id %s", u.ID)
	}
	if paired.Specialty != "Yoga" || paired.ClientsHelped != 120 {
		t.Fatalf("unexpected coach record: %+v", paired)
	}
	if st.CurrentUser == nil || st.CurrentUser.ID != u.ID {
		t.Fatalf("coach is not the session user")
	}
	if _, ok := s.RegisterCoach(domain.CoachRegistration{Email: "sarah@ny11.com"}); ok {
		t.Fatalf("expected seed coach email to be taken")
	}
}

func TestUpdateUserProfile_PlanOnlyWhenComplete(t *testing.T) {
	s, clk, engine := newTestStore(t)
	registerJane(t, s)

	age := 30
	s.UpdateUserProfile(domain.ProfilePatch{Age: &age})
	clk.Advance(5 * time.Second)
	if len(s.Plan()) != 0 {
		t.Fatalf("incomplete profile must not produce a plan")
	}

	s.UpdateUserProfile(completeProfile(domain.GoalWeightGain))
	if !s.Snapshot().PlanGenerating {
		t.Fatalf("expected plan generation in progress")
	}
	if len(s.Plan()) != 0 {
		t.Fatalf("plan installed before the generation delay")
	}
	clk.Advance(time.Second)
	st := s.Snapshot()
	if st.PlanGenerating {
		t.Fatalf("expected generation to finish")
	}
	if !reflect.DeepEqual(st.Plan[testToday], engine.Derive(domain.GoalWeightGain)) {
		t.Fatalf("expected weight gain template")
	}

	// The roster entry carries the merged profile too.
	for _, u := range st.Users {
		if u.ID == st.CurrentUser.ID && !u.ProfileComplete() {
			t.Fatalf("roster entry not updated")
		}
	}
}

func TestUpdateUserProfile_NewerUpdateSupersedesPendingGeneration(t *testing.T) {
	s, clk, engine := newTestStore(t)
	registerJane(t, s)

	s.UpdateUserProfile(completeProfile(domain.GoalWeightLoss))
	clk.Advance(500 * time.Millisecond)
	goal := domain.GoalMuscleBuild
	s.UpdateUserProfile(domain.ProfilePatch{Goal: &goal})
	if s.PendingEffects() != 1 {
		t.Fatalf("expected a single pending generation, got %d", s.PendingEffects())
	}
	clk.Advance(time.Second)
	if !reflect.DeepEqual(s.Plan()[testToday], engine.Derive(domain.GoalMuscleBuild)) {
		t.Fatalf("expected the later goal to win")
	}
}

func TestUpdateUserProfile_WithoutSession(t *testing.T) {
	s, _, _ := newTestStore(t)
	if s.UpdateUserProfile(completeProfile(domain.GoalFitness)) {
		t.Fatalf("expected update without session to fail")
	}
}

func TestLogout_CancelsPendingPlanGeneration(t *testing.T) {
	s, clk, _ := newTestStore(t)
	registerJane(t, s)
	s.UpdateUserProfile(completeProfile(domain.GoalFitness))
	s.Logout()

	if s.PendingEffects() != 0 {
		t.Fatalf("expected pending effects cancelled")
	}
	clk.Advance(5 * time.Second)
	if len(s.Plan()) != 0 {
		t.Fatalf("plan installed after logout")
	}
}

// --- Plan ---

func TestUpdateDailyPlanAndToggle(t *testing.T) {
	s, _, engine := newTestStore(t)
	dp := engine.Derive(domain.GoalFitness)
	s.UpdateDailyPlan(testToday, dp)

	if !s.ToggleItem(testToday, domain.SectionSnacks, 0) {
		t.Fatalf("expected toggle to succeed")
	}
	got, _ := s.DailyPlan(testToday)
	if !got.Snacks[0].Completed || got.Breakfast[0].Completed {
		t.Fatalf("toggle touched the wrong item: %+v", got)
	}
	if s.ToggleItem("2026-10-16", domain.SectionSnacks, 0) {
		t.Fatalf("expected toggle on a missing date to fail")
	}

	// Wholesale replace drops the completed flag.
	s.UpdateDailyPlan(testToday, dp)
	got, _ = s.DailyPlan(testToday)
	if got.Snacks[0].Completed {
		t.Fatalf("expected entry replaced wholesale")
	}
}

// --- Notices ---

func TestNotices_SelfExpire(t *testing.T) {
	s, clk, _ := newTestStore(t)
	toastID := s.ShowToast("Saved", domain.SeveritySuccess)
	notifID := s.ShowNotification(domain.Notification{Title: "Hi", Body: "There"})
	if toastID == notifID {
		t.Fatalf("expected distinct ids")
	}

	clk.Advance(2900 * time.Millisecond)
	if st := s.Snapshot(); len(st.Toasts) != 1 || len(st.Notifications) != 1 {
		t.Fatalf("notices expired early: %+v", st)
	}
	clk.Advance(200 * time.Millisecond)
	if st := s.Snapshot(); len(st.Toasts) != 0 || len(st.Notifications) != 1 {
		t.Fatalf("expected toast gone at 3s, notification kept: %+v", st)
	}
	clk.Advance(2 * time.Second)
	if st := s.Snapshot(); len(st.Notifications) != 0 {
		t.Fatalf("expected notification gone at 5s")
	}
	if s.DismissNotification(notifID) || s.DismissToast(toastID) {
		t.Fatalf("dismiss after expiry must be a no-op")
	}
}

func TestNotices_DismissBeforeExpiry(t *testing.T) {
	s, clk, _ := newTestStore(t)
	first := s.ShowNotification(domain.Notification{Title: "first"})
	if !s.DismissNotification(first) {
		t.Fatalf("expected dismiss to succeed")
	}
	second := s.ShowNotification(domain.Notification{Title: "second"})
	if second <= first {
		t.Fatalf("expected monotonic ids, got %d then %d", first, second)
	}

	clk.Advance(5 * time.Second)
	if clk.Pending() != 0 {
		t.Fatalf("expected no timers left, got %d", clk.Pending())
	}
	if st := s.Snapshot(); len(st.Notifications) != 0 {
		t.Fatalf("unexpected notifications: %+v", st.Notifications)
	}
}

// --- Preferences and subscriptions ---

func TestSubscribe_ReceivesSnapshots(t *testing.T) {
	s, _, _ := newTestStore(t)
	var got []State
	cancel := s.Subscribe(func(st State) { got = append(got, st) })

	s.AddToCart("d2")
	s.SetTheme(domain.ThemeDark)
	if s.AddToCart("missing") {
		t.Fatalf("unexpected add")
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[1].Theme != domain.ThemeDark || len(got[1].Cart) != 1 {
		t.Fatalf("unexpected snapshot: %+v", got[1])
	}

	cancel()
	s.ClearCart()
	if len(got) != 2 {
		t.Fatalf("cancelled subscriber was called")
	}
}

func TestSubscribe_DeliversInChangeOrder(t *testing.T) {
	s, _, _ := newTestStore(t)
	var (
		mu      sync.Mutex
		sizes   []int
		once    sync.Once
		started = make(chan struct{})
		release = make(chan struct{})
	)
	s.Subscribe(func(st State) {
		mu.Lock()
		sizes = append(sizes, len(st.Cart))
		mu.Unlock()
		once.Do(func() {
			close(started)
			<-release
		})
	})

	done := make(chan struct{})
	go func() {
		s.AddToCart("d2")
		close(done)
	}()
	<-started
	s.AddToCart("m1")
	close(release)
	<-done

	mu.Lock()
	defer mu.Unlock()
	if !reflect.DeepEqual(sizes, []int{1, 2}) {
		t.Fatalf("expected snapshots in change order [1 2], got %v", sizes)
	}
	if last := sizes[len(sizes)-1]; last != len(s.Snapshot().Cart) {
		t.Fatalf("last delivered cart size %d, store has %d", last, len(s.Snapshot().Cart))
	}
}

func TestSubscribe_MutationFromSubscriberIsQueued(t *testing.T) {
	s, _, _ := newTestStore(t)
	var themes []domain.Theme
	s.Subscribe(func(st State) {
		themes = append(themes, st.Theme)
		if st.Theme != domain.ThemeDark {
			s.SetTheme(domain.ThemeDark)
		}
	})

	s.AddToCart("d2")
	if len(themes) != 2 || themes[1] != domain.ThemeDark {
		t.Fatalf("expected the nested change delivered after the first, got %v", themes)
	}
}

func TestPreferences_RejectUnknownValues(t *testing.T) {
	s, _, _ := newTestStore(t)
	if s.SetLanguage(domain.Language("fr")) || s.SetTheme(domain.Theme("sepia")) {
		t.Fatalf("expected unknown preferences to be rejected")
	}
	if !s.SetLanguage(domain.LanguageAR) || s.Snapshot().Language != domain.LanguageAR {
		t.Fatalf("expected language switch")
	}
}
