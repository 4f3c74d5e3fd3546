package nutrition

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultCurrency is the currency assumed for all stored prices.
const DefaultCurrency = "EUR"

// DefaultPortionWeight is the assumed mass of one portion when a
// portion-priced food does not declare its own portion weight.
const DefaultPortionWeight = 100.0

// Nutrients is a nutrient vector. On a Food or ComposedMeal record the
// values are always expressed per 100g (the canonical basis); on a resolved
// item or a day total they are absolute amounts.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Sugars   float64 `json:"sugars"`
	Fibers   float64 `json:"fibers"`
	Fats     float64 `json:"fats"`
}

// Scale returns the vector multiplied by a scalar factor.
func (n Nutrients) Scale(f float64) Nutrients {
	return Nutrients{
		Calories: n.Calories * f,
		Proteins: n.Proteins * f,
		Carbs:    n.Carbs * f,
		Sugars:   n.Sugars * f,
		Fibers:   n.Fibers * f,
		Fats:     n.Fats * f,
	}
}

// Add returns the component-wise sum of two vectors.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Proteins: n.Proteins + o.Proteins,
		Carbs:    n.Carbs + o.Carbs,
		Sugars:   n.Sugars + o.Sugars,
		Fibers:   n.Fibers + o.Fibers,
		Fats:     n.Fats + o.Fats,
	}
}

// IsZero returns true when every component is zero.
func (n Nutrients) IsZero() bool { return n == Nutrients{} }

// Category classifies a food for display and analysis purposes.
type Category int

const (
	Other Category = iota
	Proteins
	Starches
	Vegetables
	Fruits
	Dairy
	Fats
	Beverages
	Snacks
)

func (c Category) String() string {
	switch c {
	case Proteins:
		return "proteins"
	case Starches:
		return "starches"
	case Vegetables:
		return "vegetables"
	case Fruits:
		return "fruits"
	case Dairy:
		return "dairy"
	case Fats:
		return "fats"
	case Beverages:
		return "beverages"
	case Snacks:
		return "snacks"
	default:
		return "other"
	}
}

// ParseCategory parses a category name. Unknown names map to Other, so that
// records written by older versions keep loading.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "proteins":
		return Proteins
	case "starches":
		return Starches
	case "vegetables":
		return Vegetables
	case "fruits":
		return Fruits
	case "dairy":
		return Dairy
	case "fats":
		return Fats
	case "beverages":
		return Beverages
	case "snacks":
		return Snacks
	default:
		return Other
	}
}

func (c Category) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*c = ParseCategory(s)
	return nil
}

// PriceUnit indicates what a price's quantity counts: grams or portions.
type PriceUnit int

const (
	PerMass PriceUnit = iota
	PerPortion
)

func (u PriceUnit) String() string {
	if u == PerPortion {
		return "portions"
	}
	return "grams"
}

// ParsePriceUnit parses a price unit name.
func ParsePriceUnit(s string) (PriceUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grams", "g", "mass":
		return PerMass, nil
	case "portions", "portion":
		return PerPortion, nil
	default:
		return PerMass, fmt.Errorf("unknown price unit %q", s)
	}
}

// Price is the normalized internal price representation. The historical
// shapes (quantity+unit, and the legacy grams-only field) are all folded
// into this one at decode time, so the resolver only ever sees this form.
type Price struct {
	Amount   Money     // what was paid
	Quantity float64   // how many units the amount bought
	Unit     PriceUnit // what the quantity counts
}

// Food is an atomic nutrient-reference record. Nutrient values are always
// stored per 100g, even when the user entered them portion-wise.
type Food struct {
	ID       string
	Name     string
	Category Category
	Nutrients

	// PortionBased records that the user entered nutrition data per portion;
	// PortionWeight is the mass of one portion in grams.
	PortionBased  bool
	PortionWeight float64

	// Price is nil for a food with no usable price information.
	Price *Price
}

// PricePer100 converts the food's price metadata into a price per 100g.
// It returns false for a priceless food, and for malformed metadata
// (missing, zero or negative quantities), which are treated as "no price"
// rather than errors.
func (f *Food) PricePer100() (Money, bool) {
	p := f.Price
	if p == nil || p.Quantity <= 0 {
		return Money{}, false
	}
	switch p.Unit {
	case PerMass:
		return p.Amount.Div(p.Quantity).Mul(100), true
	case PerPortion:
		portion := f.PortionWeight
		if portion <= 0 {
			portion = DefaultPortionWeight
		}
		return p.Amount.Div(p.Quantity * portion).Mul(100), true
	}
	return Money{}, false
}

// HasPrice reports whether the food carries usable price information.
func (f *Food) HasPrice() bool {
	_, ok := f.PricePer100()
	return ok
}

// GenerateFoodID derives a stable id from a display name: lowercased,
// accents folded, words dash-separated.
func GenerateFoodID(name string) string {
	var b strings.Builder
	lastDash := true // swallow leading dashes
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case strings.ContainsRune("àáâãäå", r):
			r = 'a'
		case strings.ContainsRune("èéêë", r):
			r = 'e'
		case strings.ContainsRune("ìíîï", r):
			r = 'i'
		case strings.ContainsRune("òóôõö", r):
			r = 'o'
		case strings.ContainsRune("ùúûü", r):
			r = 'u'
		case r == 'ç':
			r = 'c'
		}
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// categoryKeywords drives CategorizeByName. First match wins, so the more
// specific protein/starch terms come before the catch-all ones.
var categoryKeywords = []struct {
	cat   Category
	words []string
}{
	{Proteins, []string{"poulet", "boeuf", "steak", "thon", "sardine", "saumon", "morue", "oeuf", "jambon", "dinde", "tofu", "proteine"}},
	{Starches, []string{"riz", "pate", "pasta", "pain", "baguette", "pomme de terre", "frite", "farine", "nouille", "lentille", "quinoa", "avoine", "cereale"}},
	{Vegetables, []string{"brocoli", "haricot vert", "champignon", "poivron", "poireau", "oignon", "courgette", "epinard", "carotte", "salade", "tomate", "concombre", "legume"}},
	{Fruits, []string{"pomme", "kiwi", "orange", "raisin", "banane", "fraise", "poire", "mangue", "fruit"}},
	{Dairy, []string{"lait", "yaourt", "fromage", "comte", "skyr", "creme"}},
	{Fats, []string{"huile", "beurre", "amande", "noix", "avocat", "olive"}},
	{Beverages, []string{"eau", "jus", "cafe", "the", "soda", "boisson"}},
	{Snacks, []string{"chocolat", "biscuit", "gateau", "chips", "bonbon", "barre"}},
}

// CategorizeByName guesses a category from a food's display name. Names that
// match no rule fall back to Other.
func CategorizeByName(name string) Category {
	folded := GenerateFoodID(name)
	folded = strings.ReplaceAll(folded, "-", " ")
	for _, rule := range categoryKeywords {
		for _, w := range rule.words {
			if strings.Contains(folded, w) {
				return rule.cat
			}
		}
	}
	return Other
}
