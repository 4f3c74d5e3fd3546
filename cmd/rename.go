package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// renameCmd holds the flags for the 'rename' subcommand.
type renameCmd struct {
	name string
}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "rename a food across the whole journal" }
func (*renameCmd) Usage() string {
	return `nut rename [-name <display name>] <old-id> <new-id>

  Gives a food a new id and rewrites every reference to it in recipes and
  past days. Either everything is rewritten or nothing is.
`
}

func (c *renameCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New display name (defaults to the current one)")
}

func (c *renameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return fail(fmt.Errorf("expected <old-id> <new-id>"))
	}
	oldID, newID := f.Arg(0), f.Arg(1)

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	foods, err := store.Foods()
	if err != nil {
		return fail(err)
	}
	food, ok := foods[oldID]
	if !ok {
		return fail(fmt.Errorf("unknown food %q", oldID))
	}
	rec := *food
	rec.ID = newID
	if c.name != "" {
		rec.Name = c.name
	}
	if err := store.RenameFood(oldID, &rec); err != nil {
		return fail(err)
	}
	fmt.Printf("Renamed food %q to %q\n", oldID, newID)
	return subcommands.ExitSuccess
}
