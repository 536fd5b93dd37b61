package main

import (
	"log"

	"stampboard/internal/engine"
	"stampboard/internal/prefs"
	"stampboard/internal/ui"
)

const (
	boardWidth  = 800
	boardHeight = 600
)

var background = engine.RGB{R: 255, G: 255, B: 255}

func main() {
	store := prefs.Load()
	set := store.Settings()

	eng := engine.New(boardWidth, boardHeight, background)
	eng.ApplyConfig(set.Radius, engine.RGB{R: set.Color[0], G: set.Color[1], B: set.Color[2]})
	eng.SetMode(engine.ParseMode(set.Mode))

	log.Printf("Starting stampboard (%dx%d, %s mode)", boardWidth, boardHeight, eng.Mode())

	ui.RunApp(eng, func() {
		cfg := eng.Config()
		if err := store.Update(prefs.Settings{
			Radius: cfg.Radius,
			Color:  [3]uint8{cfg.Color.R, cfg.Color.G, cfg.Color.B},
			Mode:   eng.Mode().String(),
		}); err != nil {
			log.Printf("Failed to save settings: %v", err)
		}
	})
}
