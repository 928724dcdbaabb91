// Chessboard - an interactive chess board built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/ui"
)

var configPath = flag.String("config", "chessboard.yaml", "path to the YAML settings file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	store, err := openStorage(cfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
		store = nil
	}

	notation := cfg.StartNotation
	if store != nil {
		saved, ok, err := store.LoadPosition()
		switch {
		case err != nil:
			log.Printf("Warning: Failed to load saved position: %v", err)
		case ok:
			log.Printf("Restoring position %s", saved)
			notation = saved
		}
	}

	game := ui.NewGame(cfg, store, notation)

	w, h := game.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Chessboard")

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}

// openStorage opens the database under the configured data directory, or
// the platform default when none is set.
func openStorage(cfg *config.Config) (*storage.Storage, error) {
	if cfg.DataDir == "" {
		return storage.NewStorage()
	}
	dir, err := storage.DatabaseDirIn(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return storage.Open(dir)
}
