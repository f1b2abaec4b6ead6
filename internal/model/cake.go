package model

// Cake categories. Stored values are validated at seed time only; the read
// path passes stored categories through as-is.
const (
	CategoryWedding   = "Wedding"
	CategoryBirthday  = "Birthday"
	CategorySignature = "Signature"
	CategoryCorporate = "Corporate"
	CategorySeasonal  = "Seasonal"
)

// Customization axes an option group may represent.
const (
	OptionSize     = "Size"
	OptionFlavor   = "Flavor"
	OptionFilling  = "Filling"
	OptionFrosting = "Frosting"
)

// Cake is a sellable cake design as served to API clients. Instances are
// rebuilt from the store (or the static fallback) on every read and never
// mutated afterwards.
type Cake struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Slug        string       `json:"slug" bson:"slug"`
	Name        string       `json:"name" bson:"name"`
	Tagline     *string      `json:"tagline,omitempty" bson:"tagline,omitempty"`
	Description *string      `json:"description,omitempty" bson:"description,omitempty"`
	Category    string       `json:"category" bson:"category"`
	BasePrice   float64      `json:"base_price" bson:"base_price"`
	ImageURL    *string      `json:"image_url,omitempty" bson:"image_url,omitempty"`
	ModelURL    *string      `json:"model_url,omitempty" bson:"model_url,omitempty"`
	Ingredients []string     `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	Allergens   []string     `json:"allergens,omitempty" bson:"allergens,omitempty"`
	Options     []CakeOption `json:"options,omitempty" bson:"options,omitempty"`
	Featured    bool         `json:"featured" bson:"featured"`
}

// CakeOption is one customization axis, e.g. Size with its sizes.
type CakeOption struct {
	Name   string        `json:"name" bson:"name"`
	Values []PriceAdjust `json:"values" bson:"values"`
}

// PriceAdjust is a surcharge relative to the cake's base price.
type PriceAdjust struct {
	Label  string  `json:"label" bson:"label"`
	Amount float64 `json:"amount" bson:"amount"`
}
