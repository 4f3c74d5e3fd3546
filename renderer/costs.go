package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/prisca/nutrition"
)

// CostsMarkdown renders per-day, per-slot spending with a grand total.
func CostsMarkdown(r *nutrition.CostsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Costs %s", r.Range.Identifier()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Breakfast", "Lunch", "Dinner", "Snack", "Total"},
		Rows:   [][]string{},
	}
	for _, line := range r.Days {
		row := []string{line.Date.String()}
		for _, slot := range nutrition.Slots() {
			c, ok := line.Slots[slot]
			row = append(row, cost(c, ok))
		}
		row = append(row, cost(line.Total, !line.Total.IsZero()))
		table.Rows = append(table.Rows, row)
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", "", "", "",
		md.Bold(cost(r.Total, !r.Total.IsZero())),
	})
	if n := len(r.Days); n > 0 {
		mean := r.Total.Div(float64(n))
		table.Rows = append(table.Rows, []string{
			md.Bold("Mean/day"), "", "", "", "",
			md.Bold(cost(mean, !mean.IsZero())),
		})
	}
	doc.Table(table)

	return doc.String()
}
