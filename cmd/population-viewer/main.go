package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"github.com/sudorandom/population-explorer/pkg/explorer"
	"github.com/sudorandom/population-explorer/pkg/sources"
)

var cli struct {
	sources.Flags `embed:""`

	Width       int    `help:"Initial window width." default:"1800"`
	Height      int    `help:"Initial window height." default:"850"`
	TPS         int    `name:"tps" help:"Ticks per second (input updates)." default:"60"`
	CaptureDir  string `help:"Directory for frames saved with the P key." default:"captures" env:"POPULATION_CAPTURE_DIR"`
	RichTooltip bool   `help:"Show population figures in the hover tooltip."`
}

func main() {
	sources.LoadDotEnv()
	kong.Parse(&cli,
		kong.Name("population-viewer"),
		kong.Description("Interactive world population map."),
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

	engine := explorer.NewEngine(atlas, store, explorer.Options{
		Width:       cli.Width,
		Height:      cli.Height,
		RichTooltip: cli.RichTooltip,
		CaptureDir:  cli.CaptureDir,
		Debug:       cli.Debug,
	})

	ebiten.SetTPS(cli.TPS)
	ebiten.SetWindowSize(cli.Width, cli.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("World Population Explorer")
	if err := ebiten.RunGame(engine); err != nil {
		log.Fatal(err)
	}
}
