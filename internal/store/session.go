package store

import (
	"strings"

	"ny11/wellness-app/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Login starts a session for the user whose email matches case-insensitively.
// When the user has a stored password hash, password must match it; users
// without credentials log in by email alone. On success the plan map is
// replaced by today's derived plan if the profile is complete, or cleared
// otherwise. An unknown email or wrong password returns false and changes nothing.
func (s *Store) Login(email, password string) bool {
	return s.mutate(func() bool {
		idx := s.userIndexByEmailLocked(email)
		if idx < 0 {
			return false
		}
		user := s.users[idx].Clone()
		if user.PasswordHash != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
				return false
			}
		}

		s.endSessionLocked()
		s.currentUser = &user
		if user.ProfileComplete() {
			s.plan = domain.Plan{s.today(): s.engine.Derive(*user.Goal)}
		} else {
			s.plan = domain.Plan{}
		}
		return true
	})
}

// LoginAsGuest starts a browsing session under the distinguished guest identity.
func (s *Store) LoginAsGuest() domain.User {
	guest := domain.User{ID: domain.GuestID, Name: "Guest", Role: domain.RoleRegular}
	s.mutate(func() bool {
		s.endSessionLocked()
		u := guest.Clone()
		s.currentUser = &u
		s.plan = domain.Plan{}
		return true
	})
	return guest
}

// Logout clears the session and cancels its pending delayed effects.
// Cart, rosters and plans are process-wide and are kept.
func (s *Store) Logout() {
	s.mutate(func() bool {
		s.endSessionLocked()
		s.currentUser = nil
		return true
	})
}

// CurrentUser returns a copy of the session user.
func (s *Store) CurrentUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return domain.User{}, false
	}
	return s.currentUser.Clone(), true
}

// EmailTaken reports whether any account already uses email (case-insensitive).
func (s *Store) EmailTaken(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userIndexByEmailLocked(email) >= 0
}

// RegisterUser creates a regular user, makes it the session user and resets
// the plan map. The profile stays incomplete until UpdateUserProfile supplies
// the physical fields. Returns false if the email is already registered.
func (s *Store) RegisterUser(reg domain.UserRegistration) (domain.User, bool) {
	var created domain.User
	ok := s.mutate(func() bool {
		if s.userIndexByEmailLocked(reg.Email) >= 0 {
			return false
		}
		created = domain.User{
			ID:           "user-" + uuid.NewString(),
			Name:         reg.Name,
			Email:        reg.Email,
			Phone:        reg.Phone,
			Avatar:       reg.Avatar,
			PasswordHash: reg.PasswordHash,
			Role:         domain.RoleRegular,
		}
		s.users = append(s.users, created)

		s.endSessionLocked()
		u := created.Clone()
		s.currentUser = &u
		s.plan = domain.Plan{}
		return true
	})
	return created, ok
}

// RegisterCoach creates a paired coach account: a User with role coach and a
// Coach profile sharing one id. This is the only place coach ids are minted.
func (s *Store) RegisterCoach(reg domain.CoachRegistration) (domain.User, bool) {
	var created domain.User
	ok := s.mutate(func() bool {
		if s.userIndexByEmailLocked(reg.Email) >= 0 {
			return false
		}
		id := "coach-" + uuid.NewString()
		created = domain.User{
			ID:           id,
			Name:         reg.Name,
			Email:        reg.Email,
			Phone:        reg.Phone,
			Avatar:       reg.Avatar,
			PasswordHash: reg.PasswordHash,
			Role:         domain.RoleCoach,
		}
		coach := domain.Coach{
			ID:              id,
			Name:            reg.Name,
			Specialty:       reg.Specialty,
			Bio:             reg.Bio,
			ExperienceYears: max(reg.ExperienceYears, 0),
			ClientsHelped:   max(reg.ClientsHelped, 0),
			Avatar:          reg.Avatar,
		}
		s.users = append(s.users, created)
		s.coaches = append(s.coaches, coach)

		s.endSessionLocked()
		u := created.Clone()
		s.currentUser = &u
		return true
	})
	return created, ok
}

// UpdateUserProfile merges patch into the session user (and its roster entry).
// When the merged profile is complete, today's plan is derived after the
// plan-generation delay and replaces the plan map. A newer completing update
// supersedes a generation that has not fired yet.
func (s *Store) UpdateUserProfile(patch domain.ProfilePatch) bool {
	return s.mutate(func() bool {
		if s.currentUser == nil {
			return false
		}
		complete := patch.Apply(s.currentUser)
		if idx := s.userIndexByIDLocked(s.currentUser.ID); idx >= 0 {
			hash := s.users[idx].PasswordHash
			s.users[idx] = s.currentUser.Clone()
			s.users[idx].PasswordHash = hash
		}

		if complete {
			goal := *s.currentUser.Goal
			if s.planTask != 0 {
				s.cancelTaskLocked(s.planTask)
			}
			s.planGenerating = true
			s.planTask = s.scheduleLocked(s.timings.PlanGenerationDelay, "plan generation", func() {
				s.plan = domain.Plan{s.today(): s.engine.Derive(goal)}
				s.planGenerating = false
				s.planTask = 0
			})
		}
		return true
	})
}

// SetLanguage switches the UI language used for notices the store raises.
func (s *Store) SetLanguage(lang domain.Language) bool {
	if !lang.Valid() {
		return false
	}
	return s.mutate(func() bool {
		s.language = lang
		return true
	})
}

func (s *Store) SetTheme(theme domain.Theme) bool {
	if !theme.Valid() {
		return false
	}
	return s.mutate(func() bool {
		s.theme = theme
		return true
	})
}

func (s *Store) userIndexByEmailLocked(email string) int {
	email = strings.TrimSpace(email)
	if email == "" {
		return -1
	}
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return i
		}
	}
	return -1
}

func (s *Store) userIndexByIDLocked(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}
