package repository

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bespoke-cakes/backend/internal/model"
)

// fallbackDocuments is the degraded catalog served when no store is
// configured: a hand-authored subset of the seed set with positional ids and
// without options, ingredients, or allergens. Deliberately smaller than the
// seed data; the fallback guarantees the schema, not the full catalog.
func fallbackDocuments() []bson.M {
	return []bson.M{
		{
			"name":        "Madagascar Vanilla Classic",
			"slug":        "madagascar-vanilla-classic",
			"tagline":     "Where elegance meets comfort.",
			"description": "Moist Madagascar vanilla sponge layered with house-made salted caramel and finished with French buttercream.",
			"category":    model.CategorySignature,
			"base_price":  75.0,
			"image_url":   "https://images.unsplash.com/photo-1559622214-3f1b2c6e49a5?q=80&w=1200&auto=format&fit=crop",
			"featured":    true,
		},
		{
			"name":        "Dark Cocoa Truffle",
			"slug":        "dark-cocoa-truffle",
			"tagline":     "For the true chocolate purist.",
			"description": "Rich dark chocolate sponge, layered with silky truffle ganache.",
			"category":    model.CategorySignature,
			"base_price":  85.0,
			"image_url":   "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?q=80&w=1200&auto=format&fit=crop",
			"featured":    true,
		},
	}
}

// fallbackCakes rebuilds the fallback catalog through the same normalization
// as store documents. Deterministic, so recomputing per call keeps every
// response independent and immutable.
func fallbackCakes() []model.Cake {
	docs := fallbackDocuments()
	cakes := make([]model.Cake, 0, len(docs))
	for i, doc := range docs {
		cake, err := model.CakeFromDocument(doc)
		if err != nil {
			continue
		}
		cake.ID = strconv.Itoa(i)
		cakes = append(cakes, *cake)
	}
	return cakes
}

func fallbackBySlug(slug string) *model.Cake {
	for _, cake := range fallbackCakes() {
		if cake.Slug == slug {
			c := cake
			return &c
		}
	}
	return nil
}
