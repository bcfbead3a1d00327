package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/trafficdodge/pkg/config"
	"github.com/golangdaddy/trafficdodge/pkg/game"
	"github.com/golangdaddy/trafficdodge/pkg/models/profile"
)

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding the built-in tuning")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes (applies on restart)")
	seed := flag.Int64("seed", 0, "spawner seed, 0 picks one from the clock")
	profilePath := flag.String("profile", profile.DefaultPath(), "visit counter file")
	script := flag.String("difficulty-script", "", "tengo script overriding the difficulty curve")
	flag.Parse()

	tuning, err := config.Load(*tuningPath)
	if err != nil {
		log.Printf("%v; using built-in tuning", err)
	}
	if *script != "" {
		tuning.DifficultyScript = *script
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	plays := profile.RecordVisit(profile.Open(*profilePath))

	opts := game.Options{
		Tuning:           tuning,
		TuningPath:       *tuningPath,
		Seed:             *seed,
		Plays:            plays,
		DifficultyScript: *script,
	}

	if *watch {
		files := make([]string, 0, 2)
		for _, f := range []string{*tuningPath, tuning.DifficultyScript} {
			if f != "" {
				files = append(files, f)
			}
		}
		if len(files) == 0 {
			log.Printf("-watch needs -tuning or -difficulty-script; not watching")
		} else if w, err := config.NewWatcher(files...); err != nil {
			log.Printf("tuning watcher: %v", err)
		} else {
			defer w.Close()
			opts.Reloads = w.Events
			log.Printf("watching %v for changes", files)
		}
	}

	ebiten.SetWindowSize(int(tuning.Field.Width), int(tuning.Field.Height))
	ebiten.SetWindowTitle(tuning.Decorations.BannerText)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game.NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
