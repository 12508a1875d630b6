package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/playmatatu/billiards/internal/config"
	"github.com/playmatatu/billiards/internal/game"
	"github.com/playmatatu/billiards/internal/render"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	var sheet *ebiten.Image
	if cfg.BallSprites != "" {
		img, err := render.LoadSpriteSheet(cfg.BallSprites)
		if err != nil {
			log.Printf("[DESKTOP] %v, drawing flat balls", err)
		} else {
			sheet = img
		}
	}

	ebiten.SetTPS(cfg.TickRateHz)
	ebiten.SetWindowSize(render.WindowSize(cfg.WindowScale))
	ebiten.SetWindowTitle("Billiards")

	g := render.NewGame(game.NewSimulation(), cfg.WindowScale, sheet)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
