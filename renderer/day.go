package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/prisca/nutrition"
)

// DayMarkdown renders one day's journal: each non-empty slot as a table of
// resolved items, then the day totals against goals.
func DayMarkdown(r *nutrition.DayReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Day %s", r.Date))

	for _, slot := range nutrition.Slots() {
		lines := r.Slots[slot]
		if len(lines) == 0 {
			continue
		}
		doc.H2(slotTitle(slot))
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Item", "Weight", "Calories", "Proteins", "Carbs", "Fats", "Cost"},
			Rows:   [][]string{},
		}
		for _, line := range lines {
			label := line.Label
			if line.Dangling {
				label = label + " (missing)"
			}
			table.Rows = append(table.Rows, []string{
				label,
				grams(line.Weight),
				kcal(line.Nutrients.Calories),
				macro(line.Nutrients.Proteins),
				macro(line.Nutrients.Carbs),
				macro(line.Nutrients.Fats),
				cost(line.Cost, line.Priced),
			})
		}
		st := r.SlotTotals[slot]
		table.Rows = append(table.Rows, []string{
			md.Bold("Total"),
			"",
			md.Bold(kcal(st.Nutrients.Calories)),
			md.Bold(macro(st.Nutrients.Proteins)),
			md.Bold(macro(st.Nutrients.Carbs)),
			md.Bold(macro(st.Nutrients.Fats)),
			md.Bold(cost(st.Cost, st.Priced)),
		})
		doc.Table(table)
	}

	doc.H2("Totals")
	t := r.Totals
	rows := [][]string{
		{"Calories", progress(t.Nutrients.Calories, r.Goals.Calories, "kcal")},
		{"Proteins", progress(t.Nutrients.Proteins, r.Goals.Proteins, "g")},
		{"Carbs", progress(t.Nutrients.Carbs, r.Goals.Carbs, "g")},
		{"Sugars", macro(t.Nutrients.Sugars)},
		{"Fibers", macro(t.Nutrients.Fibers)},
		{"Fats", progress(t.Nutrients.Fats, r.Goals.Fats, "g")},
		{"Cost", cost(t.Cost, !t.Cost.IsZero())},
		{"Water", progress(t.WaterMl, r.Goals.WaterMl, "ml")},
		{"Steps", progress(float64(t.Steps), float64(r.Goals.Steps), "")},
	}
	if t.BodyWeight != nil {
		rows = append(rows, []string{"Body Weight", fmt.Sprintf("%.1f kg", *t.BodyWeight)})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Value"},
		Rows:      rows,
	})

	return doc.String()
}
