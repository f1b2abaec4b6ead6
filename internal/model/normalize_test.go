package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to hyphens", "Madagascar Vanilla Classic", "madagascar-vanilla-classic"},
		{"surrounding whitespace", "  Berry Velvet ", "berry-velvet"},
		{"internal runs collapse", "Dark   Cocoa\tTruffle", "dark-cocoa-truffle"},
		{"already a slug", "plain", "plain"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.want {
				t.Fatalf("got=%q want=%q", got, tt.want)
			}
			if again := Slugify(tt.input); again != got {
				t.Fatalf("not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestCakeFromDocumentDefaults(t *testing.T) {
	cake, err := CakeFromDocument(bson.M{"name": "X", "base_price": 10})
	require.NoError(t, err)

	require.Equal(t, "X", cake.Name)
	require.Equal(t, "x", cake.Slug)
	require.Equal(t, CategorySignature, cake.Category)
	require.Equal(t, 10.0, cake.BasePrice)
	require.False(t, cake.Featured)
	require.Nil(t, cake.Tagline)
	require.Nil(t, cake.Ingredients)
	require.Nil(t, cake.Allergens)
	require.Nil(t, cake.Options)
}

func TestCakeFromDocumentNoName(t *testing.T) {
	_, err := CakeFromDocument(bson.M{"base_price": 10})
	require.ErrorIs(t, err, ErrNoName)

	_, err = CakeFromDocument(bson.M{"name": "", "base_price": 10})
	require.ErrorIs(t, err, ErrNoName)
}

func TestCakeFromDocumentIDForms(t *testing.T) {
	oid := primitive.NewObjectID()
	cake, err := CakeFromDocument(bson.M{"_id": oid, "name": "X"})
	require.NoError(t, err)
	require.Equal(t, oid.Hex(), cake.ID)

	cake, err = CakeFromDocument(bson.M{"_id": "7", "name": "X"})
	require.NoError(t, err)
	require.Equal(t, "7", cake.ID)

	cake, err = CakeFromDocument(bson.M{"name": "X"})
	require.NoError(t, err)
	require.Equal(t, "", cake.ID)
}

func TestCakeFromDocumentStoredSlugWins(t *testing.T) {
	cake, err := CakeFromDocument(bson.M{"name": "Some Name", "slug": "custom-slug"})
	require.NoError(t, err)
	require.Equal(t, "custom-slug", cake.Slug)
}

func TestCakeFromDocumentPriceCoercion(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
	}{
		{"double", 85.5, 85.5},
		{"int32", int32(85), 85},
		{"int64", int64(85), 85},
		{"numeric string", "85", 85},
		{"garbage string", "a lot", 0},
		{"absent", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := bson.M{"name": "X"}
			if tt.value != nil {
				doc["base_price"] = tt.value
			}
			cake, err := CakeFromDocument(doc)
			require.NoError(t, err)
			require.Equal(t, tt.want, cake.BasePrice)
		})
	}
}

func TestCakeFromDocumentCategoryPassThrough(t *testing.T) {
	// Stored categories are not checked against the enumeration on reads.
	cake, err := CakeFromDocument(bson.M{"name": "X", "category": "Galactic"})
	require.NoError(t, err)
	require.Equal(t, "Galactic", cake.Category)
}

func TestCakeFromDocumentFullShape(t *testing.T) {
	doc := bson.M{
		"_id":         primitive.NewObjectID(),
		"name":        "Dark Cocoa Truffle",
		"slug":        "dark-cocoa-truffle",
		"tagline":     "For the true chocolate purist.",
		"category":    CategorySignature,
		"base_price":  85.0,
		"ingredients": primitive.A{"Cocoa", "Butter"},
		"allergens":   primitive.A{"Dairy", int32(3), "Eggs"},
		"options": primitive.A{
			bson.M{
				"name": OptionSize,
				"values": primitive.A{
					bson.M{"label": `6" (8 servings)`, "amount": int32(0)},
					bson.M{"label": `8" (14 servings)`, "amount": 28.0},
				},
			},
			bson.M{"values": primitive.A{}}, // no name: skipped
			"not a group",                   // skipped
			bson.M{"name": OptionFilling, "values": primitive.A{
				bson.M{"label": "Truffle Ganache"},
			}},
		},
		"featured": true,
	}

	cake, err := CakeFromDocument(doc)
	require.NoError(t, err)

	require.Equal(t, []string{"Cocoa", "Butter"}, cake.Ingredients)
	require.Equal(t, []string{"Dairy", "Eggs"}, cake.Allergens)
	require.True(t, cake.Featured)

	require.Len(t, cake.Options, 2)
	require.Equal(t, OptionSize, cake.Options[0].Name)
	require.Equal(t, 28.0, cake.Options[0].Values[1].Amount)
	require.Equal(t, OptionFilling, cake.Options[1].Name)
	require.Equal(t, 0.0, cake.Options[1].Values[0].Amount)
}

func TestCakeFromDocumentRebuildsFresh(t *testing.T) {
	doc := bson.M{"name": "X", "base_price": 10.0}
	first, err := CakeFromDocument(doc)
	require.NoError(t, err)
	second, err := CakeFromDocument(doc)
	require.NoError(t, err)

	first.BasePrice = 999
	require.Equal(t, 10.0, second.BasePrice)
}
