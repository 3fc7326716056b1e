package mongo

import (
	"context"
	"log"

	"ny11/wellness-app/internal/catalog"
	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection         = "users"
	coachesCollection       = "coaches"
	marketItemsCollection   = "market_items"
	bannersCollection       = "banners"
	planTemplatesCollection = "plan_templates"
	translationsCollection  = "translations"
)

// planTemplateDoc stores one goal's template: {_id: "weight_loss", plan: {...}}.
type planTemplateDoc struct {
	Goal domain.Goal      `bson:"_id"`
	Plan domain.DailyPlan `bson:"plan"`
}

// translationDoc stores one language's table: {_id: "en", strings: {...}}.
type translationDoc struct {
	Language domain.Language   `bson:"_id"`
	Strings  map[string]string `bson:"strings"`
}

// mongoSeedRepository implements repository.SeedRepository using MongoDB.
type mongoSeedRepository struct {
	db *mongo.Database
}

// NewMongoSeedRepository creates a seed source reading from db.
func NewMongoSeedRepository(db *mongo.Database) repository.SeedRepository {
	return &mongoSeedRepository{db: db}
}

func (r *mongoSeedRepository) Users(ctx context.Context) ([]domain.User, error) {
	return findAll[domain.User](ctx, r.db.Collection(usersCollection))
}

func (r *mongoSeedRepository) Coaches(ctx context.Context) ([]domain.Coach, error) {
	return findAll[domain.Coach](ctx, r.db.Collection(coachesCollection))
}

func (r *mongoSeedRepository) MarketItems(ctx context.Context) ([]domain.MarketItem, error) {
	return findAll[domain.MarketItem](ctx, r.db.Collection(marketItemsCollection))
}

func (r *mongoSeedRepository) Banners(ctx context.Context) ([]catalog.Banner, error) {
	return findAll[catalog.Banner](ctx, r.db.Collection(bannersCollection))
}

func (r *mongoSeedRepository) PlanTemplates(ctx context.Context) (map[domain.Goal]domain.DailyPlan, error) {
	docs, err := findAll[planTemplateDoc](ctx, r.db.Collection(planTemplatesCollection))
	if err != nil {
		return nil, err
	}
	out := make(map[domain.Goal]domain.DailyPlan, len(docs))
	for _, d := range docs {
		if !d.Goal.Valid() {
			log.Printf("WARN: skipping plan template for unknown goal %q", d.Goal)
			continue
		}
		out[d.Goal] = d.Plan
	}
	return out, nil
}

func (r *mongoSeedRepository) Translations(ctx context.Context) (map[domain.Language]map[string]string, error) {
	docs, err := findAll[translationDoc](ctx, r.db.Collection(translationsCollection))
	if err != nil {
		return nil, err
	}
	out := make(map[domain.Language]map[string]string, len(docs))
	for _, d := range docs {
		if !d.Language.Valid() || len(d.Strings) == 0 {
			log.Printf("WARN: skipping translation table %q", d.Language)
			continue
		}
		out[d.Language] = d.Strings
	}
	return out, nil
}

// findAll decodes every document of coll. An empty collection is
// repository.ErrNotFound.
func findAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, repository.ErrNotFound
	}
	return out, nil
}

// EnsureSeedIndexes creates the indexes the seed collections rely on.
func EnsureSeedIndexes(ctx context.Context, db *mongo.Database) {
	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetCollation(&options.Collation{Locale: "en", Strength: 2}),
		},
		{
			Keys: bson.D{{Key: "role", Value: 1}},
		},
	})
	if err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", usersCollection, err)
	}
}
