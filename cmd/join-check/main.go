// join-check lists country names that appear in only one of the two datasets. Such names render
// as "no data" in the viewer and cannot be selected.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sudorandom/population-explorer/pkg/sources"
)

var cli struct {
	sources.Flags `embed:""`

	Strict bool `help:"Exit with status 1 when any outline has no population row."`
}

func main() {
	sources.LoadDotEnv()
	kong.Parse(&cli,
		kong.Name("join-check"),
		kong.Description("Report name mismatches between the outlines and the population table."),
		kong.Vars(sources.Vars()),
	)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	atlas, err := sources.LoadAtlas(cli.Flags)
	if err != nil {
		log.Fatalf("Failed to load country outlines: %v", err)
	}
	store, err := sources.LoadStore(cli.Flags)
	if err != nil {
		log.Fatalf("Failed to load population table: %v", err)
	}

	r := checkJoin(atlas, store)
	fmt.Printf("%d outlines, %d rows, %d joined\n", atlas.Len(), store.Len(), r.Joined)

	fmt.Printf("\nOutlines without a row (%d):\n", len(r.MissingRows))
	for _, m := range r.MissingRows {
		fmt.Println("  " + m.String())
	}
	fmt.Printf("\nRows without an outline (%d):\n", len(r.MissingOutlines))
	for _, m := range r.MissingOutlines {
		fmt.Println("  " + m.String())
	}

	if cli.Strict && len(r.MissingRows) > 0 {
		os.Exit(1)
	}
}
