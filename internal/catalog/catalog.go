// Package catalog holds the static reference data the app boots with: seed
// accounts, coach profiles, market items, goal plan templates, banners and UI
// string tables. Market items, banners and translations are editable by admins.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"ny11/wellness-app/internal/domain"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// --- Error Definitions ---
var (
	ErrItemNotFound        = errors.New("market item not found")
	ErrBannerNotFound      = errors.New("banner not found")
	ErrInvalidItem         = errors.New("market item validation failed")
	ErrInvalidTranslations = errors.New("invalid translation content")
)

// Banner is a promotional image shown in the app.
type Banner struct {
	ID  string `json:"id" bson:"_id"`
	URL string `json:"url" bson:"url"`
}

// Seed is the raw reference data a Catalog is built from.
type Seed struct {
	Users         []domain.User
	Coaches       []domain.Coach
	MarketItems   []domain.MarketItem
	Banners       []Banner
	PlanTemplates map[domain.Goal]domain.DailyPlan
	Translations  map[domain.Language]map[string]string
}

// Catalog is the Entity Catalog. Safe for concurrent use.
type Catalog struct {
	mu           sync.RWMutex
	users        []domain.User
	coaches      []domain.Coach
	items        []domain.MarketItem
	banners      []Banner
	templates    map[domain.Goal]domain.DailyPlan
	translations map[domain.Language]map[string]string
	// baseTranslations are the boot-time tables; replacements fall back to
	// them for RequiredKeys.
	baseTranslations map[domain.Language]map[string]string
}

// New builds a catalog from seed, copying everything it keeps.
func New(seed Seed) *Catalog {
	c := &Catalog{
		users:        make([]domain.User, 0, len(seed.Users)),
		coaches:      append([]domain.Coach{}, seed.Coaches...),
		items:        append([]domain.MarketItem{}, seed.MarketItems...),
		banners:      append([]Banner{}, seed.Banners...),
		templates:    make(map[domain.Goal]domain.DailyPlan, len(seed.PlanTemplates)),
		translations: make(map[domain.Language]map[string]string, len(seed.Translations)),

		baseTranslations: make(map[domain.Language]map[string]string, len(seed.Translations)),
	}
	for _, u := range seed.Users {
		c.users = append(c.users, u.Clone())
	}
	for g, dp := range seed.PlanTemplates {
		c.templates[g] = dp.Clone()
	}
	for lang, table := range seed.Translations {
		c.translations[lang] = copyTable(table)
		c.baseTranslations[lang] = copyTable(table)
	}
	return c
}

// Default returns a catalog loaded with the built-in seed.
func Default() *Catalog {
	return New(DefaultSeed())
}

// SeedUsers returns the boot-time user roster.
func (c *Catalog) SeedUsers() []domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.User, len(c.users))
	for i, u := range c.users {
		out[i] = u.Clone()
	}
	return out
}

// SeedCoaches returns the boot-time coach roster.
func (c *Catalog) SeedCoaches() []domain.Coach {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Coach{}, c.coaches...)
}

// PlanTemplate returns the template for goal, if one exists.
func (c *Catalog) PlanTemplate(goal domain.Goal) (domain.DailyPlan, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	dp, ok := c.templates[goal]
	if !ok {
		return domain.DailyPlan{}, false
	}
	return dp.Clone(), true
}

// === Market Items ===

func (c *Catalog) MarketItems() []domain.MarketItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.MarketItem{}, c.items...)
}

// MarketItem looks up an item by id.
func (c *Catalog) MarketItem(id string) (domain.MarketItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.MarketItem{}, false
}

func validateItem(item domain.MarketItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if item.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidItem)
	}
	if item.Category != domain.CategoryMeal && item.Category != domain.CategoryDrink {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidItem, item.Category)
	}
	return nil
}

// AddMarketItem appends a new item, assigning an id when none is given.
func (c *Catalog) AddMarketItem(item domain.MarketItem) (domain.MarketItem, error) {
	if err := validateItem(item); err != nil {
		return domain.MarketItem{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if item.ID == "" {
		item.ID = "item-" + uuid.NewString()
	}
	for _, it := range c.items {
		if it.ID == item.ID {
			return domain.MarketItem{}, fmt.Errorf("%w: duplicate id %q", ErrInvalidItem, item.ID)
		}
	}
	c.items = append(c.items, item)
	return item, nil
}

// UpdateMarketItem replaces the item with the same id.
func (c *Catalog) UpdateMarketItem(item domain.MarketItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i] = item
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *Catalog) DeleteMarketItem(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// === Banners ===

func (c *Catalog) Banners() []Banner {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Banner{}, c.banners...)
}

func (c *Catalog) AddBanner(url string) Banner {
	c.mu.Lock()
	defer c.mu.Unlock()
	b := Banner{ID: "banner-" + uuid.NewString(), URL: url}
	c.banners = append(c.banners, b)
	return b
}

func (c *Catalog) UpdateBanner(id, url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.banners {
		if c.banners[i].ID == id {
			c.banners[i].URL = url
			return nil
		}
	}
	return ErrBannerNotFound
}

func (c *Catalog) DeleteBanner(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.banners {
		if c.banners[i].ID == id {
			c.banners = append(c.banners[:i], c.banners[i+1:]...)
			return nil
		}
	}
	return ErrBannerNotFound
}

// === Translations ===

// Translate returns the string for key in lang, falling back to English and
// then to the key itself.
func (c *Catalog) Translate(lang domain.Language, key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v, ok := c.translations[lang][key]; ok {
		return v
	}
	if v, ok := c.translations[domain.LanguageEN][key]; ok {
		return v
	}
	return key
}

// Translations returns a copy of the table for lang.
func (c *Catalog) Translations(lang domain.Language) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyTable(c.translations[lang])
}

// ReplaceTranslations parses text as a flat JSON or YAML object of string
// values and replaces the whole table for lang. RequiredKeys missing from the
// new table keep their boot-time value. On any error the existing table is
// left untouched.
func (c *Catalog) ReplaceTranslations(lang domain.Language, text string) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: unknown language %q", ErrInvalidTranslations, lang)
	}
	var table map[string]string
	if err := yaml.Unmarshal([]byte(text), &table); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTranslations, err)
	}
	if len(table) == 0 {
		return fmt.Errorf("%w: no entries", ErrInvalidTranslations)
	}
	for k := range table {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("%w: empty key", ErrInvalidTranslations)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range RequiredKeys {
		if _, ok := table[key]; ok {
			continue
		}
		if v, ok := c.baseTranslations[lang][key]; ok {
			table[key] = v
		}
	}
	c.translations[lang] = table
	return nil
}

func copyTable(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
