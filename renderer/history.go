package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/prisca/nutrition"
)

// HistoryMarkdown renders one row per calendar day of the range.
func HistoryMarkdown(r *nutrition.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History %s", r.Range.Identifier()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Calories", "Proteins", "Carbs", "Fats", "Cost"},
		Rows:   [][]string{},
	}
	for _, t := range r.Totals {
		table.Rows = append(table.Rows, []string{
			t.Date.String(),
			kcal(t.Nutrients.Calories),
			macro(t.Nutrients.Proteins),
			macro(t.Nutrients.Carbs),
			macro(t.Nutrients.Fats),
			cost(t.Cost, !t.Cost.IsZero()),
		})
	}
	doc.Table(table)

	return doc.String()
}
