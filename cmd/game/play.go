package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/skylands/internal/application/game"
	"github.com/younwookim/skylands/internal/application/level"
	"github.com/younwookim/skylands/internal/application/replay"
	"github.com/younwookim/skylands/internal/infrastructure/config"
	"github.com/younwookim/skylands/internal/infrastructure/storage"
	"github.com/younwookim/skylands/internal/platform/render"
	"github.com/younwookim/skylands/levels"
)

var (
	flagLevels  string
	flagTuning  string
	flagWatch   bool
	flagRecord  string
	flagNoStore bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing from level 1.

Controls:
  WASD/Arrows - Move
  Shift       - Run
  Space       - Jump
  P/Esc       - Pause
  R           - Restart level
  Enter       - Confirm message boxes

Examples:
  skylands play
  skylands play --levels ./levels --tuning tuning.yaml --watch
  skylands play --record run.json --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of level JSON files (default: built-in levels)")
	playCmd.Flags().StringVar(&flagTuning, "tuning", "", "Path to tuning YAML overrides")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload tuning when the file changes (requires --tuning)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record inputs to file for later replay")
	playCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not record finished runs to the scores database")
}

func runPlay(cmd *cobra.Command, args []string) {
	loader := levelLoader()

	tuning := config.DefaultTuning()
	if flagTuning != "" {
		t, err := config.LoadTuning(flagTuning)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
			os.Exit(1)
		}
		tuning = t
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	opts := render.Options{TuningPath: flagTuning}

	if flagRecord != "" {
		opts.Recorder = replay.NewRecorder(seed, 1)
	}

	if flagWatch {
		if flagTuning == "" {
			fmt.Fprintln(os.Stderr, "Error: --watch requires --tuning")
			os.Exit(1)
		}
		watcher, err := config.NewWatcher(filepath.Dir(flagTuning))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching tuning: %v\n", err)
			os.Exit(1)
		}
		defer watcher.Close()
		opts.Watcher = watcher
	}

	if !flagNoStore {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			log.Warn("scores database unavailable", "err", err)
		} else {
			defer store.Close()
			opts.Sink = store
		}
	}

	assets := render.NewAssets()
	manager := level.NewManager(loader, assets, tuning)
	fx := render.NewParticles(rng)

	frontend := render.New(tuning, opts)
	director := game.New(manager, tuning, frontend, fx)
	frontend.Attach(director, fx)

	if err := frontend.Run("Skylands"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.Recorder != nil {
		if err := opts.Recorder.Save(flagRecord); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving recording: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Recording saved: %s (%d frames)\n", flagRecord, opts.Recorder.Frames())
	}
}

// levelLoader picks the level source: an on-disk directory when
// --levels is set, otherwise the levels compiled into the binary.
func levelLoader() *config.Loader {
	if flagLevels != "" {
		return config.NewLoader(flagLevels)
	}
	return config.NewFSLoader(levels.FS)
}
