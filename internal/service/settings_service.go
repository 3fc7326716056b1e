package service

import (
	"context"
	"errors"

	"ny11/wellness-app/internal/catalog"
	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/store"
)

var ErrInvalidPreference = errors.New("unsupported language or theme")

// Preferences are the session-independent UI settings.
type Preferences struct {
	Language domain.Language `json:"language"`
	Theme    domain.Theme    `json:"theme"`
}

// Notices is the current toast and notification queue.
type Notices struct {
	Toasts        []domain.Toast        `json:"toasts"`
	Notifications []domain.Notification `json:"notifications"`
}

type SettingsService interface {
	Preferences(ctx context.Context) Preferences
	Update(ctx context.Context, lang *domain.Language, theme *domain.Theme) (Preferences, error)
	// TestNotification raises the appointment reminder in the current language.
	TestNotification(ctx context.Context) int64
	Notices(ctx context.Context) Notices
	DismissToast(ctx context.Context, id int64) bool
	DismissNotification(ctx context.Context, id int64) bool
	Translations(ctx context.Context) map[string]string
}

type settingsService struct {
	store   *store.Store
	catalog *catalog.Catalog
}

func NewSettingsService(st *store.Store, cat *catalog.Catalog) SettingsService {
	return &settingsService{store: st, catalog: cat}
}

func (s *settingsService) Preferences(ctx context.Context) Preferences {
	snap := s.store.Snapshot()
	return Preferences{Language: snap.Language, Theme: snap.Theme}
}

// Update validates both values before applying either.
func (s *settingsService) Update(ctx context.Context, lang *domain.Language, theme *domain.Theme) (Preferences, error) {
	if (lang != nil && !lang.Valid()) || (theme != nil && !theme.Valid()) {
		return Preferences{}, ErrInvalidPreference
	}
	if lang != nil {
		s.store.SetLanguage(*lang)
	}
	if theme != nil {
		s.store.SetTheme(*theme)
	}
	return s.Preferences(ctx), nil
}

func (s *settingsService) TestNotification(ctx context.Context) int64 {
	lang := s.store.Snapshot().Language
	return s.store.ShowNotification(domain.Notification{
		Title: s.catalog.Translate(lang, catalog.KeyAppointmentReminderTitle),
		Body:  s.catalog.Translate(lang, catalog.KeyAppointmentReminderBody),
		Icon:  "🔔",
	})
}

func (s *settingsService) Notices(ctx context.Context) Notices {
	snap := s.store.Snapshot()
	return Notices{Toasts: snap.Toasts, Notifications: snap.Notifications}
}

func (s *settingsService) DismissToast(ctx context.Context, id int64) bool {
	return s.store.DismissToast(id)
}

func (s *settingsService) DismissNotification(ctx context.Context, id int64) bool {
	return s.store.DismissNotification(id)
}

// Translations returns the string table for the current language.
func (s *settingsService) Translations(ctx context.Context) map[string]string {
	return s.catalog.Translations(s.store.Snapshot().Language)
}
