package store

import "ny11/wellness-app/internal/domain"

// UpdateDailyPlan replaces the entry for date wholesale.
func (s *Store) UpdateDailyPlan(date string, dp domain.DailyPlan) {
	s.mutate(func() bool {
		s.plan[date] = dp.Clone()
		return true
	})
}

// UpdatePlan merges dated entries into the plan map; each given date replaces
// the existing entry for that date.
func (s *Store) UpdatePlan(p domain.Plan) {
	s.mutate(func() bool {
		s.mergePlanLocked(p)
		return true
	})
}

func (s *Store) mergePlanLocked(p domain.Plan) {
	for date, dp := range p {
		s.plan[date] = dp.Clone()
	}
}

// ToggleItem flips the completed flag of one item in the plan for date.
func (s *Store) ToggleItem(date string, section domain.Section, index int) bool {
	return s.mutate(func() bool {
		dp, ok := s.plan[date]
		if !ok {
			return false
		}
		dp = dp.Clone()
		if !dp.Toggle(section, index) {
			return false
		}
		s.plan[date] = dp
		return true
	})
}

// DailyPlan returns a copy of the plan for date.
func (s *Store) DailyPlan(date string) (domain.DailyPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dp, ok := s.plan[date]
	if !ok {
		return domain.DailyPlan{}, false
	}
	return dp.Clone(), true
}

// Plan returns a copy of the whole plan map.
func (s *Store) Plan() domain.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Clone()
}

// Today returns the current date key.
func (s *Store) Today() string {
	return s.today()
}
