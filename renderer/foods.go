package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	md "github.com/nao1215/markdown"
	"github.com/prisca/nutrition"
)

// FoodsMarkdown renders the food catalog sorted by id.
func FoodsMarkdown(foods map[string]*nutrition.Food) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Foods")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Name", "Category", "Calories", "Proteins", "Carbs", "Fats", "Price/100g"},
		Rows:   [][]string{},
	}
	for _, id := range slices.Sorted(maps.Keys(foods)) {
		f := foods[id]
		price := "-"
		if p, ok := f.PricePer100(); ok {
			price = p.String()
		}
		table.Rows = append(table.Rows, []string{
			f.ID,
			f.Name,
			f.Category.String(),
			kcal(f.Calories),
			macro(f.Proteins),
			macro(f.Carbs),
			macro(f.Fats),
			price,
		})
	}
	doc.Table(table)

	return doc.String()
}

// MealsMarkdown renders the composed-meal catalog sorted by id, with the
// cached per-100g profile.
func MealsMarkdown(meals map[string]*nutrition.ComposedMeal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Meals")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Name", "Yield", "Calories", "Proteins", "Ingredients", "Price/100g"},
		Rows:   [][]string{},
	}
	for _, id := range slices.Sorted(maps.Keys(meals)) {
		m := meals[id]
		price := "-"
		if p, ok := m.Price(); ok {
			price = p.String()
		}
		table.Rows = append(table.Rows, []string{
			m.ID,
			m.Name,
			grams(m.Yield()),
			kcal(m.Calories),
			macro(m.Proteins),
			fmt.Sprintf("%d", len(m.Ingredients)),
			price,
		})
	}
	doc.Table(table)

	return doc.String()
}
