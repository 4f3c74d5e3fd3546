package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// fmtCmd rewrites the data files in canonical form.
type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the data files in canonical form" }
func (*fmtCmd) Usage() string {
	return `nut fmt

  Sorts every collection, migrates legacy price shapes, and refreshes the
  cached recipe profiles.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Fmt(); err != nil {
		return fail(err)
	}
	fmt.Printf("Formatted %s\n", store.Dir())
	return subcommands.ExitSuccess
}
