package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bespoke-cakes/backend/internal/model"
	"github.com/bespoke-cakes/backend/internal/seed"
)

// CakeFilter narrows a catalog listing. Nil fields impose no constraint.
// Category matching is exact and case-sensitive.
type CakeFilter struct {
	Category *string
	Featured *bool
}

func (f CakeFilter) query() bson.M {
	q := bson.M{}
	if f.Category != nil {
		q["category"] = *f.Category
	}
	if f.Featured != nil {
		q["featured"] = *f.Featured
	}
	return q
}

type CakeRepository interface {
	// List returns the cakes matching the filter in store order. Against an
	// unavailable store it returns the static fallback set; the fallback
	// path does not filter.
	List(ctx context.Context, filter CakeFilter) ([]model.Cake, error)
	// GetBySlug returns the cake with the given slug, or (nil, nil) when no
	// cake matches.
	GetBySlug(ctx context.Context, slug string) (*model.Cake, error)
}

// cakeCollection is the slice of the Mongo collection API the read path
// uses. *mongo.Collection satisfies it.
type cakeCollection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
}

type cakeRepository struct {
	coll cakeCollection
}

// NewCakeRepository builds a repository over the given database. A nil
// database is valid: every read then serves the static fallback catalog.
func NewCakeRepository(database *mongo.Database) CakeRepository {
	r := &cakeRepository{}
	if database != nil {
		r.coll = database.Collection(seed.CollectionName)
	}
	return r
}

func (r *cakeRepository) List(ctx context.Context, filter CakeFilter) ([]model.Cake, error) {
	if r.coll == nil {
		return fallbackCakes(), nil
	}

	cur, err := r.coll.Find(ctx, filter.query())
	if err != nil {
		return fallbackCakes(), nil
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return fallbackCakes(), nil
	}

	cakes := make([]model.Cake, 0, len(docs))
	for _, doc := range docs {
		cake, err := model.CakeFromDocument(doc)
		if err != nil {
			// One unusable document must not fail the whole listing.
			continue
		}
		cakes = append(cakes, *cake)
	}
	return cakes, nil
}

func (r *cakeRepository) GetBySlug(ctx context.Context, slug string) (*model.Cake, error) {
	if r.coll == nil {
		return fallbackBySlug(slug), nil
	}

	var doc bson.M
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return fallbackBySlug(slug), nil
	}

	cake, err := model.CakeFromDocument(doc)
	if err != nil {
		return nil, nil
	}
	return cake, nil
}
