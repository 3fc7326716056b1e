package planner

import (
	"reflect"
	"testing"

	"ny11/wellness-app/internal/catalog"
	"ny11/wellness-app/internal/domain"
)

func TestDerive_IsDeterministic(t *testing.T) {
	e := New(catalog.Default())
	for _, g := range domain.Goals {
		a, b := e.Derive(g), e.Derive(g)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("derive(%s) not deterministic", g)
		}
	}
}

func TestDerive_UnknownGoalFallsBackToMaintenance(t *testing.T) {
	e := New(catalog.Default())
	got := e.Derive(domain.Goal("marathon"))
	want := e.Derive(domain.GoalMaintenance)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected maintenance template, got %+v", got)
	}
}

func TestDerive_ReturnsIndependentCopies(t *testing.T) {
	e := New(catalog.Default())
	a := e.Derive(domain.GoalWeightLoss)
	a.Toggle(domain.SectionBreakfast, 0)
	b := e.Derive(domain.GoalWeightLoss)
	if b.Breakfast[0].Completed {
		t.Fatalf("mutating a derived plan leaked into the template")
	}
}

func TestDerive_EmptySourceYieldsEmptyPlan(t *testing.T) {
	e := New(catalog.New(catalog.Seed{}))
	dp := e.Derive(domain.GoalFitness)
	if dp.Breakfast == nil || len(dp.Breakfast) != 0 {
		t.Fatalf("expected empty non-nil lists, got %+v", dp)
	}
}

func TestAdherence(t *testing.T) {
	e := New(catalog.Default())
	day1 := e.Derive(domain.GoalFitness) // 5 items
	day1.Toggle(domain.SectionBreakfast, 0)
	day1.Toggle(domain.SectionLunch, 0)
	day2 := e.Derive(domain.GoalFitness)
	for _, s := range domain.Sections {
		day2.Toggle(s, 0)
	}

	r := Adherence(domain.Plan{
		"2026-10-15": day2,
		"2026-10-14": day1,
		"2026-10-13": {},
	})
	if len(r.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(r.Days))
	}
	if r.Days[0].Date != "2026-10-14" || r.Days[0].Percent != 40 {
		t.Fatalf("unexpected first day: %+v", r.Days[0])
	}
	if r.Days[1].Percent != 100 {
		t.Fatalf("unexpected second day: %+v", r.Days[1])
	}
	if r.Overall != 70 {
		t.Fatalf("expected overall 70, got %v", r.Overall)
	}
}
