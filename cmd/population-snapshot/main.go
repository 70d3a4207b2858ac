// population-snapshot renders the choropleth to a PNG without opening a window.
package main

import (
	"image/color"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sudorandom/population-explorer/pkg/choropleth"
	"github.com/sudorandom/population-explorer/pkg/geo"
	"github.com/sudorandom/population-explorer/pkg/sources"
)

var cli struct {
	sources.Flags `embed:""`

	Width  int    `help:"Image width in pixels." default:"1800"`
	Height int    `help:"Image height in pixels." default:"850"`
	Select string `help:"Country name to outline, matched exactly against the outline names."`
	Output string `short:"o" help:"PNG file to write." default:"population.png"`
}

var colorSelection = color.RGBA{255, 220, 80, 255}

func main() {
	sources.LoadDotEnv()
	kong.Parse(&cli,
		kong.Name("population-snapshot"),
		kong.Description("Render the world population map to a PNG file."),
		kong.Vars(sources.Vars()),
	)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	vp := geo.Viewport{Width: float64(cli.Width), Height: float64(cli.Height)}
	if !vp.Valid() {
		log.Fatalf("Invalid size %dx%d", cli.Width, cli.Height)
	}

	atlas, err := sources.LoadAtlas(cli.Flags)
	if err != nil {
		log.Fatalf("Failed to load country outlines: %v", err)
	}
	store, err := sources.LoadStore(cli.Flags)
	if err != nil {
		log.Fatalf("Failed to load population table: %v", err)
	}

	img := choropleth.RenderMap(atlas, store, vp)
	if cli.Select != "" {
		f, ok := atlas.Feature(cli.Select)
		if !ok {
			log.Fatalf("No outline named %q", cli.Select)
		}
		if _, ok := store.Lookup(cli.Select); !ok {
			log.Printf("[dataset] No population data for %q, outlining anyway", cli.Select)
		}
		choropleth.Outline(img, f, vp, colorSelection)
	}

	if err := choropleth.WritePNG(cli.Output, img); err != nil {
		log.Fatalf("Failed to write %s: %v", cli.Output, err)
	}
	log.Printf("Wrote %dx%d map to %s", cli.Width, cli.Height, cli.Output)
}
