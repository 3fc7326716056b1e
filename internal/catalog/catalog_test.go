package catalog

import (
	"errors"
	"testing"

	"ny11/wellness-app/internal/domain"
)

func TestDefault_EveryCoachHasPairedUser(t *testing.T) {
	c := Default()
	users := map[string]domain.User{}
	for _, u := range c.SeedUsers() {
		users[u.ID] = u
	}
	for _, coach := range c.SeedCoaches() {
		u, ok := users[coach.ID]
		if !ok {
			t.Fatalf("coach %s has no paired user", coach.ID)
		}
		if u.Role != domain.RoleCoach {
			t.Fatalf("coach %s paired user has role %s", coach.ID, u.Role)
		}
	}
}

func TestDefault_HasTemplateForEveryGoal(t *testing.T) {
	c := Default()
	for _, g := range domain.Goals {
		if _, ok := c.PlanTemplate(g); !ok {
			t.Fatalf("missing template for %s", g)
		}
	}
}

func TestMarketItemCRUD(t *testing.T) {
	c := Default()

	item, err := c.AddMarketItem(domain.MarketItem{Name: "Berry Bowl", Price: 9.5, Category: domain.CategoryMeal})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID == "" {
		t.Fatalf("expected generated id")
	}
	if _, ok := c.MarketItem(item.ID); !ok {
		t.Fatalf("added item not found")
	}

	item.Price = 10
	if err := c.UpdateMarketItem(item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := c.MarketItem(item.ID)
	if got.Price != 10 {
		t.Fatalf("expected price 10, got %v", got.Price)
	}

	if err := c.DeleteMarketItem(item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.DeleteMarketItem(item.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	if _, err := c.AddMarketItem(domain.MarketItem{Name: "Free", Price: 0, Category: domain.CategoryDrink}); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem for zero price, got %v", err)
	}
	if _, err := c.AddMarketItem(domain.MarketItem{ID: "m1", Name: "Dup", Price: 1, Category: domain.CategoryMeal}); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem for duplicate id, got %v", err)
	}
}

func TestBannerCRUD(t *testing.T) {
	c := New(Seed{})
	b := c.AddBanner("https://example.com/a.jpg")
	if err := c.UpdateBanner(b.ID, "https://example.com/b.jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Banners(); len(got) != 1 || got[0].URL != "https://example.com/b.jpg" {
		t.Fatalf("unexpected banners: %+v", got)
	}
	if err := c.DeleteBanner(b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.UpdateBanner(b.ID, "x"); !errors.Is(err, ErrBannerNotFound) {
		t.Fatalf("expected ErrBannerNotFound, got %v", err)
	}
}

func TestReplaceTranslations_AllOrNothing(t *testing.T) {
	c := Default()
	before := c.Translations(domain.LanguageEN)

	bad := []string{
		`{"planUpdatedTitle": "Updated"`, // truncated JSON
		`just a sentence`,
		`{}`,
		`["a", "b"]`,
	}
	for _, text := range bad {
		if err := c.ReplaceTranslations(domain.LanguageEN, text); !errors.Is(err, ErrInvalidTranslations) {
			t.Fatalf("%q: expected ErrInvalidTranslations, got %v", text, err)
		}
		if got := c.Translate(domain.LanguageEN, KeyPlanUpdatedTitle); got != before[KeyPlanUpdatedTitle] {
			t.Fatalf("%q: table changed on failure: %q", text, got)
		}
	}

	if err := c.ReplaceTranslations(domain.LanguageEN, `{"planUpdatedTitle": "Fresh plan!"}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Translate(domain.LanguageEN, KeyPlanUpdatedTitle); got != "Fresh plan!" {
		t.Fatalf("expected replaced title, got %q", got)
	}
	// Keys absent from the replacement table fall back to the key itself.
	if got := c.Translate(domain.LanguageEN, "welcome"); got != "welcome" {
		t.Fatalf("expected whole-table replace, got %q", got)
	}
}

func TestTranslate_FallsBackToEnglish(t *testing.T) {
	c := New(Seed{Translations: map[domain.Language]map[string]string{
		domain.LanguageEN: {"hello": "Hello"},
		domain.LanguageAR: {},
	}})
	if got := c.Translate(domain.LanguageAR, "hello"); got != "Hello" {
		t.Fatalf("expected English fallback, got %q", got)
	}
	if err := c.ReplaceTranslations(domain.Language("fr"), `{"a": "b"}`); !errors.Is(err, ErrInvalidTranslations) {
		t.Fatalf("expected unknown language to be rejected, got %v", err)
	}
}

func TestReplaceTranslations_KeepsRequiredKeys(t *testing.T) {
	c := Default()
	base := c.Translations(domain.LanguageEN)

	if err := c.ReplaceTranslations(domain.LanguageEN, `{"welcome": "Hi"}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range RequiredKeys {
		if got := c.Translate(domain.LanguageEN, key); got != base[key] || got == key {
			t.Fatalf("%s: expected boot-time value %q, got %q", key, base[key], got)
		}
	}
	if got := c.Translate(domain.LanguageEN, "welcome"); got != "Hi" {
		t.Fatalf("expected new entry, got %q", got)
	}

	// Keys the upload does carry win over the boot-time values.
	if err := c.ReplaceTranslations(domain.LanguageEN, `{"planUpdatedTitle": "Fresh plan!"}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Translate(domain.LanguageEN, KeyPlanUpdatedTitle); got != "Fresh plan!" {
		t.Fatalf("expected uploaded title, got %q", got)
	}
	if got := c.Translate(domain.LanguageEN, KeyPlanUpdatedBody); got != base[KeyPlanUpdatedBody] {
		t.Fatalf("expected boot-time body, got %q", got)
	}
}
