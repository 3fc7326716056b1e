package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ny11/wellness-app/internal/catalog"
	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/store"
)

// --- Error Definitions ---
var (
	ErrBannerNotFound      = errors.New("banner not found")
	ErrInvalidMarketItem   = errors.New("invalid market item")
	ErrInvalidLanguage     = errors.New("unsupported language")
	ErrInvalidTranslations = errors.New("invalid translation content")
)

type AdminService interface {
	Users(ctx context.Context) []domain.User
	Coaches(ctx context.Context) []domain.Coach

	CreateItem(ctx context.Context, item domain.MarketItem) (*domain.MarketItem, error)
	UpdateItem(ctx context.Context, item domain.MarketItem) (*domain.MarketItem, error)
	DeleteItem(ctx context.Context, itemID string) error

	CreateBanner(ctx context.Context, url string) (*catalog.Banner, error)
	UpdateBanner(ctx context.Context, bannerID, url string) (*catalog.Banner, error)
	DeleteBanner(ctx context.Context, bannerID string) error

	Translations(ctx context.Context, lang domain.Language) (map[string]string, error)
	ReplaceTranslations(ctx context.Context, lang domain.Language, text string) (map[string]string, error)
}

type adminService struct {
	store   *store.Store
	catalog *catalog.Catalog
}

func NewAdminService(st *store.Store, cat *catalog.Catalog) AdminService {
	return &adminService{store: st, catalog: cat}
}

// Users lists every account except administrators, without credentials.
func (s *adminService) Users(ctx context.Context) []domain.User {
	users := []domain.User{}
	for _, u := range s.store.Snapshot().Users {
		if u.Role == domain.RoleAdmin {
			continue
		}
		u.PasswordHash = ""
		users = append(users, u)
	}
	return users
}

func (s *adminService) Coaches(ctx context.Context) []domain.Coach {
	return s.store.Snapshot().Coaches
}

func (s *adminService) CreateItem(ctx context.Context, item domain.MarketItem) (*domain.MarketItem, error) {
	created, err := s.catalog.AddMarketItem(item)
	if err != nil {
		return nil, mapCatalogError(err)
	}
	log.Printf("INFO: market item %s created", created.ID)
	return &created, nil
}

func (s *adminService) UpdateItem(ctx context.Context, item domain.MarketItem) (*domain.MarketItem, error) {
	if err := s.catalog.UpdateMarketItem(item); err != nil {
		return nil, mapCatalogError(err)
	}
	updated, _ := s.catalog.MarketItem(item.ID)
	return &updated, nil
}

func (s *adminService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.catalog.DeleteMarketItem(itemID); err != nil {
		return mapCatalogError(err)
	}
	log.Printf("INFO: market item %s deleted", itemID)
	return nil
}

func (s *adminService) CreateBanner(ctx context.Context, url string) (*catalog.Banner, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: banner url is required", ErrValidationFailed)
	}
	b := s.catalog.AddBanner(url)
	return &b, nil
}

func (s *adminService) UpdateBanner(ctx context.Context, bannerID, url string) (*catalog.Banner, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: banner url is required", ErrValidationFailed)
	}
	if err := s.catalog.UpdateBanner(bannerID, url); err != nil {
		return nil, mapCatalogError(err)
	}
	return &catalog.Banner{ID: bannerID, URL: url}, nil
}

func (s *adminService) DeleteBanner(ctx context.Context, bannerID string) error {
	return mapCatalogError(s.catalog.DeleteBanner(bannerID))
}

func (s *adminService) Translations(ctx context.Context, lang domain.Language) (map[string]string, error) {
	if !lang.Valid() {
		return nil, ErrInvalidLanguage
	}
	return s.catalog.Translations(lang), nil
}

// ReplaceTranslations swaps the table for lang, keeping required notice keys.
// Nothing changes on error.
func (s *adminService) ReplaceTranslations(ctx context.Context, lang domain.Language, text string) (map[string]string, error) {
	if !lang.Valid() {
		return nil, ErrInvalidLanguage
	}
	if err := s.catalog.ReplaceTranslations(lang, text); err != nil {
		return nil, mapCatalogError(err)
	}
	log.Printf("INFO: translations for %s replaced", lang)
	return s.catalog.Translations(lang), nil
}

// mapCatalogError translates catalog errors into service errors, keeping the detail.
func mapCatalogError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, catalog.ErrItemNotFound):
		return ErrItemNotFound
	case errors.Is(err, catalog.ErrBannerNotFound):
		return ErrBannerNotFound
	case errors.Is(err, catalog.ErrInvalidItem):
		return fmt.Errorf("%w: %w", ErrInvalidMarketItem, err)
	case errors.Is(err, catalog.ErrInvalidTranslations):
		return fmt.Errorf("%w: %w", ErrInvalidTranslations, err)
	default:
		return err
	}
}
