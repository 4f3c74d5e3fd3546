package nutrition

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// This file persists the three record collections as JSONL, one record per
// line, human readable and git friendly. Decoding also performs the price
// shape migration: historical files carry either the current
// priceQuantity+priceUnit pair or the deprecated priceGrams field, and both
// collapse into the one normalized Price representation, so nothing past
// this file ever sees a legacy shape.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jfood is the wire shape of a Food record.
type jfood struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Nutrients
	IsPortionBased bool    `json:"isPortionBased,omitempty"`
	PortionWeight  float64 `json:"portionWeight,omitempty"`

	Price         *decimal.Decimal `json:"price,omitempty"`
	PriceQuantity float64          `json:"priceQuantity,omitempty"`
	PriceUnit     string           `json:"priceUnit,omitempty"`
	// Deprecated single mass-quantity field, migrated on read.
	PriceGrams float64 `json:"priceGrams,omitempty"`
}

func (j jfood) food() *Food {
	f := &Food{
		ID:            j.ID,
		Name:          j.Name,
		Category:      j.Category,
		Nutrients:     j.Nutrients,
		PortionBased:  j.IsPortionBased,
		PortionWeight: j.PortionWeight,
	}
	f.Price = decodePrice(j.Price, j.PriceQuantity, j.PriceUnit, j.PriceGrams)
	return f
}

// decodePrice folds the historical price shapes into the normalized one.
// A price without any usable quantity is dropped: the record is treated as
// priceless, never as an error.
func decodePrice(amount *decimal.Decimal, quantity float64, unit string, legacyGrams float64) *Price {
	if amount == nil {
		return nil
	}
	money := M(*amount, DefaultCurrency)
	if quantity > 0 {
		if u, err := ParsePriceUnit(unit); err == nil {
			return &Price{Amount: money, Quantity: quantity, Unit: u}
		}
		log.Printf("warning: unknown price unit %q, ignoring quantity", unit)
	}
	if legacyGrams > 0 {
		// Deprecated shape: identical to the mass-based case.
		return &Price{Amount: money, Quantity: legacyGrams, Unit: PerMass}
	}
	return nil
}

// EncodeFood writes one food as a single JSONL line, fields in canonical
// order, legacy shapes never written back.
func EncodeFood(w io.Writer, f *Food) error {
	var obj jsonObjectWriter
	obj.Append("id", f.ID)
	obj.Append("name", f.Name)
	obj.Append("category", f.Category)
	obj.EmbedFrom(f.Nutrients)
	obj.Optional("isPortionBased", f.PortionBased)
	obj.Optional("portionWeight", f.PortionWeight)
	if f.Price != nil {
		obj.Append("price", f.Price.Amount.Decimal())
		obj.Append("priceQuantity", f.Price.Quantity)
		obj.Append("priceUnit", f.Price.Unit.String())
	}
	line, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode food %q: %w", f.ID, err)
	}
	_, err = fmt.Fprintf(w, "%s\n", line)
	return err
}

// EncodeFoods writes the whole food collection in id order.
func EncodeFoods(w io.Writer, foods map[string]*Food) error {
	for _, id := range slices.Sorted(maps.Keys(foods)) {
		if err := EncodeFood(w, foods[id]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeFoods reads a JSONL stream of food records.
func DecodeFoods(r io.Reader) (map[string]*Food, error) {
	foods := make(map[string]*Food)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var j jfood
		if err := json.Unmarshal(line, &j); err != nil {
			return nil, fmt.Errorf("format error in foods line %q: %w", string(line), err)
		}
		if j.ID == "" {
			return nil, fmt.Errorf("format error: food line %q has no id", string(line))
		}
		if _, exists := foods[j.ID]; exists {
			return nil, fmt.Errorf("format error: food %q is defined twice", j.ID)
		}
		foods[j.ID] = j.food()
	}
	return foods, scanner.Err()
}

// jmeal is the wire shape of a ComposedMeal record. The cached values are
// persisted like a food's, normalized per 100g of the finished recipe.
type jmeal struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
	TotalWeight float64      `json:"totalWeight,omitempty"`
	Adjustable  bool         `json:"isPortionAdjustable,omitempty"`
	Nutrients
	Price *decimal.Decimal `json:"price,omitempty"`
}

func (j jmeal) meal() *ComposedMeal {
	m := &ComposedMeal{
		ID:                j.ID,
		Name:              j.Name,
		Ingredients:       j.Ingredients,
		TotalWeight:       j.TotalWeight,
		PortionAdjustable: j.Adjustable,
		Nutrients:         j.Nutrients,
	}
	if j.Price != nil {
		m.CachedPrice = M(*j.Price, DefaultCurrency)
		m.cachedPriced = true
	}
	return m
}

// EncodeMeal writes one composed meal as a single JSONL line.
func EncodeMeal(w io.Writer, m *ComposedMeal) error {
	var obj jsonObjectWriter
	obj.Append("id", m.ID)
	obj.Append("name", m.Name)
	obj.Append("ingredients", m.Ingredients)
	obj.Optional("totalWeight", m.TotalWeight)
	obj.Optional("isPortionAdjustable", m.PortionAdjustable)
	obj.EmbedFrom(m.Nutrients)
	if price, ok := m.Price(); ok {
		obj.Append("price", price.Decimal())
	}
	line, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode meal %q: %w", m.ID, err)
	}
	_, err = fmt.Fprintf(w, "%s\n", line)
	return err
}

// EncodeMeals writes the whole composed-meal collection in id order.
func EncodeMeals(w io.Writer, meals map[string]*ComposedMeal) error {
	for _, id := range slices.Sorted(maps.Keys(meals)) {
		if err := EncodeMeal(w, meals[id]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMeals reads a JSONL stream of composed-meal records.
func DecodeMeals(r io.Reader) (map[string]*ComposedMeal, error) {
	meals := make(map[string]*ComposedMeal)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var j jmeal
		if err := json.Unmarshal(line, &j); err != nil {
			return nil, fmt.Errorf("format error in meals line %q: %w", string(line), err)
		}
		if j.ID == "" {
			return nil, fmt.Errorf("format error: meal line %q has no id", string(line))
		}
		if _, exists := meals[j.ID]; exists {
			return nil, fmt.Errorf("format error: meal %q is defined twice", j.ID)
		}
		meals[j.ID] = j.meal()
	}
	return meals, scanner.Err()
}

// jitem is the wire shape of one MealItem.
type jitem struct {
	UniqueID       string             `json:"uniqueId"`
	ID             string             `json:"id"`
	IsMeal         bool               `json:"isMeal,omitempty"`
	Weight         float64            `json:"weight"`
	CustomPortions map[string]float64 `json:"customPortions,omitempty"`
	CustomPrice    *decimal.Decimal   `json:"customPrice,omitempty"`
}

func (j jitem) item() MealItem {
	item := MealItem{
		UniqueID:       j.UniqueID,
		Kind:           FoodRef,
		RefID:          j.ID,
		Weight:         j.Weight,
		CustomPortions: j.CustomPortions,
	}
	if j.IsMeal {
		item.Kind = MealRef
	}
	if j.CustomPrice != nil {
		price := M(*j.CustomPrice, DefaultCurrency)
		item.CustomPrice = &price
	}
	return item
}

func encodeItem(item MealItem) jitem {
	j := jitem{
		UniqueID:       item.UniqueID,
		ID:             item.RefID,
		IsMeal:         item.Kind == MealRef,
		Weight:         item.Weight,
		CustomPortions: item.CustomPortions,
	}
	if item.CustomPrice != nil {
		d := item.CustomPrice.Decimal()
		j.CustomPrice = &d
	}
	return j
}

// jday is the wire shape of one Day record.
type jday struct {
	Date    Date               `json:"date"`
	Weight  *float64           `json:"weight,omitempty"`
	WaterMl float64            `json:"water,omitempty"`
	Steps   int                `json:"steps,omitempty"`
	Meals   map[string][]jitem `json:"meals"`
}

func (j jday) day() (*Day, error) {
	day := &Day{Date: j.Date, BodyWeight: j.Weight, WaterMl: j.WaterMl, Steps: j.Steps}
	for name, items := range j.Meals {
		slot, err := ParseSlot(name)
		if err != nil {
			return nil, err
		}
		for _, ji := range items {
			day.Meals[slot] = append(day.Meals[slot], ji.item())
		}
	}
	return day, nil
}

// EncodeDay writes one day record as a single JSONL line, slots in day order.
func EncodeDay(w io.Writer, d *Day) error {
	jmeals := make(map[string][]jitem, len(slots))
	for _, s := range slots {
		items := make([]jitem, 0, len(d.Meals[s]))
		for _, item := range d.Meals[s] {
			items = append(items, encodeItem(item))
		}
		jmeals[s.String()] = items
	}

	var obj jsonObjectWriter
	obj.Append("date", d.Date)
	if d.BodyWeight != nil {
		obj.Append("weight", *d.BodyWeight)
	}
	obj.Optional("water", d.WaterMl)
	obj.Optional("steps", d.Steps)
	obj.Append("meals", jmeals)
	line, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode day %s: %w", d.Date, err)
	}
	_, err = fmt.Fprintf(w, "%s\n", line)
	return err
}

// EncodeDays writes the whole journal in chronological order.
func EncodeDays(w io.Writer, days map[Date]*Day) error {
	dates := slices.Collect(maps.Keys(days))
	slices.SortFunc(dates, func(a, b Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})
	for _, date := range dates {
		if err := EncodeDay(w, days[date]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeDays reads a JSONL stream of day records.
func DecodeDays(r io.Reader) (map[Date]*Day, error) {
	days := make(map[Date]*Day)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var j jday
		if err := json.Unmarshal(line, &j); err != nil {
			return nil, fmt.Errorf("format error in days line %q: %w", string(line), err)
		}
		if j.Date.IsZero() {
			return nil, fmt.Errorf("format error: day line %q has no date", string(line))
		}
		if _, exists := days[j.Date]; exists {
			return nil, fmt.Errorf("format error: day %s is defined twice", j.Date)
		}
		day, err := j.day()
		if err != nil {
			return nil, fmt.Errorf("format error in days line %q: %w", string(line), err)
		}
		days[j.Date] = day
	}
	return days, scanner.Err()
}

// EncodeGoals writes the goals singleton as indented JSON.
func EncodeGoals(w io.Writer, g Goals) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

// DecodeGoals reads the goals singleton.
func DecodeGoals(r io.Reader) (Goals, error) {
	var g Goals
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Goals{}, fmt.Errorf("could not decode goals: %w", err)
	}
	return g, nil
}
