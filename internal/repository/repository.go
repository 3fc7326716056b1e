package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ny11/wellness-app/internal/catalog"
	"ny11/wellness-app/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SeedRepository reads the catalog's reference data from an external source.
// An empty result or ErrNotFound means the source holds nothing for that collection.
type SeedRepository interface {
	Users(ctx context.Context) ([]domain.User, error)
	Coaches(ctx context.Context) ([]domain.Coach, error)
	MarketItems(ctx context.Context) ([]domain.MarketItem, error)
	Banners(ctx context.Context) ([]catalog.Banner, error)
	PlanTemplates(ctx context.Context) (map[domain.Goal]domain.DailyPlan, error)
	Translations(ctx context.Context) (map[domain.Language]map[string]string, error)
}

// LoadSeed builds a catalog seed from repo. Each collection the repository has
// no data for keeps the fallback's value. Users and coaches are taken together
// so every coach keeps its paired account.
func LoadSeed(ctx context.Context, repo SeedRepository, fallback catalog.Seed) (catalog.Seed, error) {
	seed := fallback

	users, err := repo.Users(ctx)
	if err != nil && !absent(err) {
		return catalog.Seed{}, fmt.Errorf("load users: %w", err)
	}
	coaches, err := repo.Coaches(ctx)
	if err != nil && !absent(err) {
		return catalog.Seed{}, fmt.Errorf("load coaches: %w", err)
	}
	if len(users) > 0 {
		if err := checkCoachPairs(users, coaches); err != nil {
			return catalog.Seed{}, err
		}
		seed.Users, seed.Coaches = users, coaches
	} else if len(coaches) > 0 {
		log.Printf("WARN: ignoring %d stored coach(es) without stored users", len(coaches))
	}

	items, err := repo.MarketItems(ctx)
	if err != nil && !absent(err) {
		return catalog.Seed{}, fmt.Errorf("load market items: %w", err)
	}
	if len(items) > 0 {
		seed.MarketItems = items
	}

	banners, err := repo.Banners(ctx)
	if err != nil && !absent(err) {
		return catalog.Seed{}, fmt.Errorf("load banners: %w", err)
	}
	if len(banners) > 0 {
		seed.Banners = banners
	}

	templates, err := repo.PlanTemplates(ctx)
	if err != nil && !absent(err) {
		return catalog.Seed{}, fmt.Errorf("load plan templates: %w", err)
	}
	if len(templates) > 0 {
		seed.PlanTemplates = templates
	}

	tables, err := repo.Translations(ctx)
	if err != nil && !absent(err) {
		return catalog.Seed{}, fmt.Errorf("load translations: %w", err)
	}
	if len(tables) > 0 {
		merged := make(map[domain.Language]map[string]string, len(fallback.Translations))
		for lang, table := range fallback.Translations {
			merged[lang] = table
		}
		for lang, table := range tables {
			merged[lang] = table
		}
		seed.Translations = merged
	}

	log.Printf("INFO: seed loaded: %d users, %d coaches, %d items, %d banners, %d templates",
		len(seed.Users), len(seed.Coaches), len(seed.MarketItems), len(seed.Banners), len(seed.PlanTemplates))
	return seed, nil
}

// absent reports whether err only says the collection is empty.
func absent(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// checkCoachPairs verifies every coach has exactly one user of role coach with its id.
func checkCoachPairs(users []domain.User, coaches []domain.Coach) error {
	byID := make(map[string]int, len(users))
	for _, u := range users {
		if u.Role == domain.RoleCoach {
			byID[u.ID]++
		}
	}
	for _, c := range coaches {
		if byID[c.ID] != 1 {
			return fmt.Errorf("coach %q has no paired coach account", c.ID)
		}
	}
	return nil
}
