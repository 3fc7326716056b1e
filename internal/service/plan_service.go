package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ny11/wellness-app/internal/clock"
	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/planner"
	"ny11/wellness-app/internal/store"
)

// --- Error Definitions ---
var (
	ErrInvalidProfile = errors.New("invalid profile data")
	ErrInvalidDate    = errors.New("date must be formatted as YYYY-MM-DD")
	ErrPlanNotFound   = errors.New("no plan for this date")
	ErrInvalidItem    = errors.New("plan item not found")
)

// DayView is one dated plan entry as presented on the dashboard.
type DayView struct {
	Date       string           `json:"date"`
	Plan       domain.DailyPlan `json:"plan"`
	Found      bool             `json:"found"`
	Generating bool             `json:"generating"`
	Completed  int              `json:"completed"`
	Total      int              `json:"total"`
}

type PlanService interface {
	UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (*domain.User, error)
	Today(ctx context.Context) DayView
	Day(ctx context.Context, date string) (DayView, error)
	Plan(ctx context.Context) domain.Plan
	SetDay(ctx context.Context, date string, dp domain.DailyPlan) (DayView, error)
	ToggleItem(ctx context.Context, date string, section domain.Section, index int) (DayView, error)
	Stats(ctx context.Context) planner.Report
}

type planService struct {
	store *store.Store
}

func NewPlanService(st *store.Store) PlanService {
	return &planService{store: st}
}

// UpdateProfile validates and applies a profile patch. Completing the profile
// starts plan generation in the store.
func (s *planService) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (*domain.User, error) {
	if _, err := memberUser(s.store); err != nil {
		return nil, err
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	if !s.store.UpdateUserProfile(patch) {
		return nil, ErrNotAuthenticated
	}
	user, err := sessionUser(s.store)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return &user, nil
}

func validatePatch(p domain.ProfilePatch) error {
	if p.Name != nil && *p.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidProfile)
	}
	if p.Age != nil && (*p.Age <= 0 || *p.Age > 130) {
		return fmt.Errorf("%w: age must be between 1 and 130", ErrInvalidProfile)
	}
	if p.WeightKg != nil && *p.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidProfile)
	}
	if p.HeightCm != nil && *p.HeightCm <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalidProfile)
	}
	if p.Goal != nil && !p.Goal.Valid() {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidProfile, *p.Goal)
	}
	return nil
}

func (s *planService) Today(ctx context.Context) DayView {
	return s.view(s.store.Today())
}

func (s *planService) Day(ctx context.Context, date string) (DayView, error) {
	if err := checkDate(date); err != nil {
		return DayView{}, err
	}
	return s.view(date), nil
}

func (s *planService) Plan(ctx context.Context) domain.Plan {
	return s.store.Plan()
}

// SetDay replaces the plan for date wholesale.
func (s *planService) SetDay(ctx context.Context, date string, dp domain.DailyPlan) (DayView, error) {
	if err := checkDate(date); err != nil {
		return DayView{}, err
	}
	s.store.UpdateDailyPlan(date, dp)
	return s.view(date), nil
}

func (s *planService) ToggleItem(ctx context.Context, date string, section domain.Section, index int) (DayView, error) {
	if err := checkDate(date); err != nil {
		return DayView{}, err
	}
	if _, ok := s.store.DailyPlan(date); !ok {
		return DayView{}, ErrPlanNotFound
	}
	if !s.store.ToggleItem(date, section, index) {
		return DayView{}, ErrInvalidItem
	}
	return s.view(date), nil
}

// Stats reports completion per planned day.
func (s *planService) Stats(ctx context.Context) planner.Report {
	return planner.Adherence(s.store.Plan())
}

func (s *planService) view(date string) DayView {
	v := DayView{Date: date, Generating: s.store.Snapshot().PlanGenerating}
	v.Plan, v.Found = s.store.DailyPlan(date)
	v.Completed, v.Total = v.Plan.Counts()
	return v
}

func checkDate(date string) error {
	if _, err := time.Parse(clock.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
