package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sidecore/internal/application/game"
	"github.com/younwookim/sidecore/internal/application/scene/room"
	"github.com/younwookim/sidecore/internal/application/system"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
	"github.com/younwookim/sidecore/internal/infrastructure/render"
)

//go:embed configs
var configFS embed.FS

func main() {
	roomsFlag := flag.String("rooms", "demo", "Comma-separated room names, played in order")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	core := cfg.Core

	sprites := placeholderSprites()

	var rooms []*system.Room
	for _, name := range strings.Split(*roomsFlag, ",") {
		roomCfg, err := loader.LoadRoom(strings.TrimSpace(name))
		if err != nil {
			log.Fatalf("Failed to load room: %v", err)
		}
		r, err := system.LoadRoom(roomCfg, sprites, core.Door.OpenSpeed)
		if err != nil {
			log.Fatalf("Failed to build room: %v", err)
		}
		rooms = append(rooms, r)
	}

	emissions, err := system.BuildEmissions(cfg.Particles, sprites)
	if err != nil {
		log.Fatalf("Failed to build particle presets: %v", err)
	}

	attackSheet := render.Placeholder(core.Attack.FrameWidth*core.Attack.Frames, core.Attack.FrameHeight,
		render.PlaceholderColor(core.Attack.Sprite))
	assets := room.Assets{
		Player:       sprites["player"],
		Projectile:   sprites[core.Projectile.Sprite],
		AttackFrames: render.Frames(attackSheet, core.Attack.FrameWidth, core.Attack.FrameHeight, core.Attack.Frames),
	}

	roomScene, err := room.New(core, system.NewLevel(rooms...), emissions, assets)
	if err != nil {
		log.Fatalf("Failed to create room scene: %v", err)
	}

	g := game.New(roomScene, core.Display.ScreenWidth, core.Display.ScreenHeight)
	g.SetDT(core.Display.FrameDuration())

	// Set up ebiten
	ebiten.SetWindowSize(core.Display.ScreenWidth*core.Display.Scale,
		core.Display.ScreenHeight*core.Display.Scale)
	ebiten.SetWindowTitle("Side-scroller Core Demo")
	ebiten.SetTPS(core.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// placeholderSprites fills every sprite name the demo configs use with a
// flat color. Asset decoding is outside the core.
func placeholderSprites() render.Sprites {
	sizes := map[string][2]int{
		"player":     {12, 24},
		"block":      {32, 32},
		"ice":        {32, 32},
		"mud":        {32, 32},
		"oneway":     {64, 12},
		"spike":      {32, 32},
		"door":       {16, 64},
		"projectile": {6, 6},
		"spark":      {3, 3},
		"soul":       {4, 4},
	}

	sprites := make(render.Sprites, len(sizes))
	for name, wh := range sizes {
		sprites[name] = render.Placeholder(wh[0], wh[1], render.PlaceholderColor(name))
	}
	return sprites
}
