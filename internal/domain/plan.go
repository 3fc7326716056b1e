// internal/domain/plan.go
package domain

// Section names one list inside a DailyPlan.
type Section string

const (
	SectionBreakfast Section = "breakfast"
	SectionLunch     Section = "lunch"
	SectionDinner    Section = "dinner"
	SectionSnacks    Section = "snacks"
	SectionExercises Section = "exercises"
)

// Sections lists every section in display order.
var Sections = []Section{SectionBreakfast, SectionLunch, SectionDinner, SectionSnacks, SectionExercises}

// DailyPlan is the set of meals and exercises assigned to one calendar date.
type DailyPlan struct {
	Breakfast []Meal     `json:"breakfast" bson:"breakfast"`
	Lunch     []Meal     `json:"lunch" bson:"lunch"`
	Dinner    []Meal     `json:"dinner" bson:"dinner"`
	Snacks    []Meal     `json:"snacks" bson:"snacks"`
	Exercises []Exercise `json:"exercises" bson:"exercises"`
}

// Plan maps a date key ("YYYY-MM-DD") to that day's plan.
type Plan map[string]DailyPlan

// Clone returns a deep copy so the receiver's slices are never shared.
func (d DailyPlan) Clone() DailyPlan {
	return DailyPlan{
		Breakfast: cloneMeals(d.Breakfast),
		Lunch:     cloneMeals(d.Lunch),
		Dinner:    cloneMeals(d.Dinner),
		Snacks:    cloneMeals(d.Snacks),
		Exercises: append([]Exercise{}, d.Exercises...),
	}
}

func cloneMeals(in []Meal) []Meal {
	return append([]Meal{}, in...)
}

func (d *DailyPlan) meals(s Section) *[]Meal {
	switch s {
	case SectionBreakfast:
		return &d.Breakfast
	case SectionLunch:
		return &d.Lunch
	case SectionDinner:
		return &d.Dinner
	case SectionSnacks:
		return &d.Snacks
	default:
		return nil
	}
}

// Toggle flips the completed flag of one item. It reports false when the
// section or index does not exist.
func (d *DailyPlan) Toggle(s Section, index int) bool {
	if index < 0 {
		return false
	}
	if s == SectionExercises {
		if index >= len(d.Exercises) {
			return false
		}
		d.Exercises[index].Completed = !d.Exercises[index].Completed
		return true
	}
	list := d.meals(s)
	if list == nil || index >= len(*list) {
		return false
	}
	(*list)[index].Completed = !(*list)[index].Completed
	return true
}

// Counts returns how many items the plan has and how many are completed.
func (d DailyPlan) Counts() (completed, total int) {
	for _, list := range [][]Meal{d.Breakfast, d.Lunch, d.Dinner, d.Snacks} {
		for _, m := range list {
			total++
			if m.Completed {
				completed++
			}
		}
	}
	for _, e := range d.Exercises {
		total++
		if e.Completed {
			completed++
		}
	}
	return completed, total
}

// Clone returns a deep copy of every dated entry.
func (p Plan) Clone() Plan {
	out := make(Plan, len(p))
	for date, dp := range p {
		out[date] = dp.Clone()
	}
	return out
}
