package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/skylands/internal/application/game"
	"github.com/younwookim/skylands/internal/application/level"
	"github.com/younwookim/skylands/internal/application/replay"
	"github.com/younwookim/skylands/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run headlessly",
	Long: `Feed a recorded input file through the simulation without opening a
window and print the outcome. The simulation is deterministic, so the
result matches the original run.

Examples:
  skylands replay run.json
  skylands replay run.json --levels ./levels`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of level JSON files (default: built-in levels)")
	replayCmd.Flags().StringVar(&flagTuning, "tuning", "", "Path to tuning YAML overrides")
}

// replayUI collects director messages. Message boxes confirm
// immediately: during recording no input frames are captured while a
// box is up, so instant confirm reproduces the recorded timeline.
type replayUI struct {
	score, coins, lives, level int
	lastTitle                  string
	messages                   int
}

func (u *replayUI) SetCounters(score, coins, lives, level int) {
	u.score, u.coins, u.lives, u.level = score, coins, lives, level
}

func (u *replayUI) ShowMessage(title, body, button string, onConfirm func()) {
	u.lastTitle = title
	u.messages++
	if onConfirm != nil {
		onConfirm()
	}
}

func runReplay(cmd *cobra.Command, args []string) {
	data, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}

	tuning := config.DefaultTuning()
	if flagTuning != "" {
		t, err := config.LoadTuning(flagTuning)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
			os.Exit(1)
		}
		tuning = t
	}

	player := replay.NewReplayer(*data)
	ui := &replayUI{}
	manager := level.NewManager(levelLoader(), nil, tuning)
	director := game.New(manager, tuning, ui, nil)

	if err := director.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}

	for {
		in, ok := player.Next()
		if !ok {
			break
		}
		director.Tick(in)
	}

	fmt.Printf("Replayed %d frames (recorded %s, seed %d)\n",
		player.TotalFrames(), data.StartTime, data.Seed)
	fmt.Printf("Final: score %d, coins %d, lives %d, level %d\n",
		ui.score, ui.coins, ui.lives, ui.level)
	if ui.lastTitle != "" {
		fmt.Printf("Last event: %s\n", ui.lastTitle)
	}
}
