package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNoName marks a stored document without a usable name. Such documents
// cannot be served and listings skip them instead of failing.
var ErrNoName = errors.New("cake document has no name")

// Slugify derives a URL-safe slug from a display name: lowercase, leading and
// trailing whitespace stripped, internal whitespace runs collapsed to single
// hyphens. Same input always yields the same slug.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
}

// CakeFromDocument builds a canonical Cake out of a loosely-typed stored
// document. Field presence and types are not guaranteed by the store:
// missing or unusable values fall back to the documented defaults
// (category Signature, base_price 0, featured false) and optional fields
// stay unset. The only failure is a document without a name.
func CakeFromDocument(doc bson.M) (*Cake, error) {
	name := asString(doc["name"])
	if name == "" {
		return nil, ErrNoName
	}

	slug := asString(doc["slug"])
	if slug == "" {
		slug = Slugify(name)
	}

	category := asString(doc["category"])
	if category == "" {
		category = CategorySignature
	}

	return &Cake{
		ID:          idString(doc["_id"]),
		Slug:        slug,
		Name:        name,
		Tagline:     asOptString(doc["tagline"]),
		Description: asOptString(doc["description"]),
		Category:    category,
		BasePrice:   asFloat(doc["base_price"]),
		ImageURL:    asOptString(doc["image_url"]),
		ModelURL:    asOptString(doc["model_url"]),
		Ingredients: asStrings(doc["ingredients"]),
		Allergens:   asStrings(doc["allergens"]),
		Options:     asOptions(doc["options"]),
		Featured:    asBool(doc["featured"]),
	}, nil
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asOptString(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

// asFloat coerces the BSON numeric types (and numeric strings, which some
// administrative inserts produce) to float64, defaulting to 0.
func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

// asArray unifies the shapes a BSON array shows up as: primitive.A from the
// driver's decoder, plain slices from hand-authored documents.
func asArray(v interface{}) []interface{} {
	switch arr := v.(type) {
	case primitive.A:
		return arr
	case []interface{}:
		return arr
	default:
		return nil
	}
}

func asStrings(v interface{}) []string {
	arr := asArray(v)
	if arr == nil {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func asOptions(v interface{}) []CakeOption {
	arr := asArray(v)
	if arr == nil {
		return nil
	}
	out := make([]CakeOption, 0, len(arr))
	for _, e := range arr {
		group, ok := e.(bson.M)
		if !ok {
			continue
		}
		name := asString(group["name"])
		if name == "" {
			continue
		}
		out = append(out, CakeOption{
			Name:   name,
			Values: asAdjusts(group["values"]),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func asAdjusts(v interface{}) []PriceAdjust {
	arr := asArray(v)
	if arr == nil {
		return nil
	}
	out := make([]PriceAdjust, 0, len(arr))
	for _, e := range arr {
		val, ok := e.(bson.M)
		if !ok {
			continue
		}
		out = append(out, PriceAdjust{
			Label:  asString(val["label"]),
			Amount: asFloat(val["amount"]),
		})
	}
	return out
}
