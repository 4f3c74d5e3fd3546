// Package cmd implements the CLI application to keep a nutrition journal.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/prisca/nutrition"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&logCmd{}, "journal")
	c.Register(&unlogCmd{}, "journal")
	c.Register(&waterCmd{}, "journal")
	c.Register(&stepsCmd{}, "journal")
	c.Register(&weightCmd{}, "journal")

	c.Register(&dayCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&weeklyCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&averagesCmd{}, "reports")
	c.Register(&costsCmd{}, "reports")

	c.Register(&foodAddCmd{}, "catalog")
	c.Register(&foodListCmd{}, "catalog")
	c.Register(&foodPriceCmd{}, "catalog")
	c.Register(&foodRmCmd{}, "catalog")
	c.Register(&mealCreateCmd{}, "catalog")
	c.Register(&mealDupCmd{}, "catalog")
	c.Register(&mealListCmd{}, "catalog")
	c.Register(&mealRmCmd{}, "catalog")
	c.Register(&renameCmd{}, "catalog")

	c.Register(&goalsCmd{}, "settings")
	c.Register(&fmtCmd{}, "settings")
	c.Register(&topicCmd{}, "settings")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", defaultDataDir(), "Path to the journal data directory")

func defaultDataDir() string {
	if dir := os.Getenv("NUT_DATA"); dir != "" {
		return dir
	}
	return ".nutrition"
}

// openStore is the central function to open the journal store.
func openStore() (*nutrition.Store, error) {
	return nutrition.Open(*dataDir)
}

// parseDate parses a -d flag value, empty meaning today.
func parseDate(s string) (nutrition.Date, error) {
	if s == "" {
		return nutrition.Today(), nil
	}
	return nutrition.ParseDate(s)
}

// parseOverrides parses a "foodid=grams,foodid=grams" portion override list.
func parseOverrides(s string) (map[string]float64, error) {
	if s == "" {
		return nil, nil
	}
	overrides := map[string]float64{}
	for _, part := range strings.Split(s, ",") {
		id, val, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid portion override %q, want foodid=grams", part)
		}
		w, err := strconv.ParseFloat(val, 64)
		if err != nil || w < 0 {
			return nil, fmt.Errorf("invalid portion weight in %q", part)
		}
		overrides[strings.TrimSpace(id)] = w
	}
	return overrides, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is unavailable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
