package seed

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bespoke-cakes/backend/internal/model"
)

// CollectionName is the store collection holding cake documents.
const CollectionName = "cake"

// Collection is the slice of the Mongo collection API seeding needs.
// *mongo.Collection satisfies it.
type Collection interface {
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
}

// Ensure populates an empty cake collection with the sample catalog. It is
// idempotent: a collection that already holds documents is left untouched.
// A nil database means the process runs without a store and there is nothing
// to seed.
func Ensure(ctx context.Context, database *mongo.Database) error {
	if database == nil {
		return nil
	}
	return ensure(ctx, database.Collection(CollectionName))
}

func ensure(ctx context.Context, coll Collection) error {
	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count cakes: %w", err)
	}
	if n > 0 {
		return nil
	}
	if _, err := coll.InsertMany(ctx, Documents()); err != nil {
		return fmt.Errorf("insert sample cakes: %w", err)
	}
	return nil
}

// Documents returns the sample catalog inserted into an empty store. Built
// fresh on each call so callers can never mutate a shared copy.
func Documents() []interface{} {
	return []interface{}{
		bson.M{
			"name":        "Madagascar Vanilla Classic",
			"slug":        "madagascar-vanilla-classic",
			"tagline":     "Where elegance meets comfort.",
			"description": "Moist Madagascar vanilla sponge layered with house-made salted caramel and finished with French buttercream.",
			"category":    model.CategorySignature,
			"base_price":  75.0,
			"image_url":   "https://images.unsplash.com/photo-1559622214-3f1b2c6e49a5?q=80&w=1200&auto=format&fit=crop",
			"model_url":   nil,
			"ingredients": []interface{}{"Flour", "Sugar", "Butter", "Eggs", "Vanilla"},
			"allergens":   []interface{}{"Dairy", "Eggs", "Gluten"},
			"options": []interface{}{
				bson.M{
					"name": model.OptionSize,
					"values": []interface{}{
						bson.M{"label": `6" (8 servings)`, "amount": 0.0},
						bson.M{"label": `8" (14 servings)`, "amount": 25.0},
						bson.M{"label": `10" (24 servings)`, "amount": 60.0},
					},
				},
				bson.M{
					"name": model.OptionFrosting,
					"values": []interface{}{
						bson.M{"label": "French Buttercream", "amount": 0.0},
						bson.M{"label": "Swiss Meringue", "amount": 8.0},
						bson.M{"label": "Ganache", "amount": 12.0},
					},
				},
			},
			"featured": true,
		},
		bson.M{
			"name":        "Dark Cocoa Truffle",
			"slug":        "dark-cocoa-truffle",
			"tagline":     "For the true chocolate purist.",
			"description": "Rich dark chocolate sponge, layered with silky truffle ganache.",
			"category":    model.CategorySignature,
			"base_price":  85.0,
			"image_url":   "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?q=80&w=1200&auto=format&fit=crop",
			"model_url":   nil,
			"ingredients": []interface{}{"Cocoa", "Butter", "Sugar", "Eggs", "Cream"},
			"allergens":   []interface{}{"Dairy", "Eggs", "Gluten"},
			"options": []interface{}{
				bson.M{
					"name": model.OptionSize,
					"values": []interface{}{
						bson.M{"label": `6" (8 servings)`, "amount": 0.0},
						bson.M{"label": `8" (14 servings)`, "amount": 28.0},
						bson.M{"label": `10" (24 servings)`, "amount": 65.0},
					},
				},
				bson.M{
					"name": model.OptionFilling,
					"values": []interface{}{
						bson.M{"label": "Truffle Ganache", "amount": 0.0},
						bson.M{"label": "Raspberry Compote", "amount": 6.0},
					},
				},
			},
			"featured": true,
		},
		bson.M{
			"name":        "Berry Velvet",
			"slug":        "berry-velvet",
			"tagline":     "A jewel-toned celebration.",
			"description": "Vanilla sponge, berry compote, mascarpone frosting.",
			"category":    model.CategoryBirthday,
			"base_price":  78.0,
			"image_url":   "https://images.unsplash.com/photo-1562777717-dc6984f65a63?q=80&w=1200&auto=format&fit=crop",
			"model_url":   nil,
			"ingredients": []interface{}{"Flour", "Sugar", "Eggs", "Mascarpone", "Berries"},
			"allergens":   []interface{}{"Dairy", "Eggs", "Gluten"},
			"options": []interface{}{
				bson.M{
					"name": model.OptionFrosting,
					"values": []interface{}{
						bson.M{"label": "Mascarpone", "amount": 0.0},
						bson.M{"label": "Buttercream", "amount": 5.0},
					},
				},
			},
			"featured": false,
		},
	}
}
