// Package planner maps a user's goal to a daily plan template and reports
// adherence over a plan.
package planner

import (
	"sort"

	"ny11/wellness-app/internal/domain"
)

// TemplateSource supplies plan templates by goal.
type TemplateSource interface {
	PlanTemplate(goal domain.Goal) (domain.DailyPlan, bool)
}

// Engine is the plan derivation engine. Derive is deterministic and has no side effects.
type Engine struct {
	templates TemplateSource
}

func New(templates TemplateSource) *Engine {
	return &Engine{templates: templates}
}

// Derive returns a fresh copy of the template for goal, falling back to the
// maintenance template for unrecognized goals.
func (e *Engine) Derive(goal domain.Goal) domain.DailyPlan {
	if dp, ok := e.templates.PlanTemplate(goal); ok {
		return dp.Clone()
	}
	if dp, ok := e.templates.PlanTemplate(domain.GoalMaintenance); ok {
		return dp.Clone()
	}
	return domain.DailyPlan{
		Breakfast: []domain.Meal{},
		Lunch:     []domain.Meal{},
		Dinner:    []domain.Meal{},
		Snacks:    []domain.Meal{},
		Exercises: []domain.Exercise{},
	}
}

// DayAdherence is the completion rate of one dated plan.
type DayAdherence struct {
	Date      string  `json:"date"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

// Report summarizes adherence across a plan.
type Report struct {
	Days    []DayAdherence `json:"days"`
	Overall float64        `json:"overall"` // Mean of daily percentages
}

// Adherence computes per-date completion percentages, sorted by date.
// Dates with no items are skipped.
func Adherence(plan domain.Plan) Report {
	report := Report{Days: []DayAdherence{}}
	for date, dp := range plan {
		done, total := dp.Counts()
		if total == 0 {
			continue
		}
		report.Days = append(report.Days, DayAdherence{
			Date:      date,
			Completed: done,
			Total:     total,
			Percent:   float64(done) * 100 / float64(total),
		})
	}
	sort.Slice(report.Days, func(i, j int) bool { return report.Days[i].Date < report.Days[j].Date })

	if len(report.Days) > 0 {
		sum := 0.0
		for _, d := range report.Days {
			sum += d.Percent
		}
		report.Overall = sum / float64(len(report.Days))
	}
	return report
}
