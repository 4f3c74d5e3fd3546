package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/prisca/nutrition"
)

// AveragesMarkdown renders one row per bucket with per-day means.
func AveragesMarkdown(r *nutrition.AveragesReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s averages %s", titleCase(r.Period.Name()), r.Range.Identifier()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Period", "Calories", "Proteins", "Carbs", "Fats", "Cost/day", "Water", "Steps", "Weight"},
		Rows:   [][]string{},
	}
	for _, b := range r.Buckets {
		weight := "-"
		if b.BodyWeight != nil {
			weight = fmt.Sprintf("%.1f kg", *b.BodyWeight)
		}
		table.Rows = append(table.Rows, []string{
			b.Label(),
			kcal(b.Nutrients.Calories),
			macro(b.Nutrients.Proteins),
			macro(b.Nutrients.Carbs),
			macro(b.Nutrients.Fats),
			cost(b.Cost, !b.Cost.IsZero()),
			fmt.Sprintf("%.0f ml", b.WaterMl),
			fmt.Sprintf("%.0f", b.Steps),
			weight,
		})
	}
	doc.Table(table)

	return doc.String()
}
