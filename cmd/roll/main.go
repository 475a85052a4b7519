package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/KirkDiggler/rollengine/internal/common/clock"
	"github.com/KirkDiggler/rollengine/internal/common/uuid"
	"github.com/KirkDiggler/rollengine/internal/config"
	"github.com/KirkDiggler/rollengine/internal/dice"
	"github.com/KirkDiggler/rollengine/internal/models"
	rollService "github.com/KirkDiggler/rollengine/internal/services/roll"
	"github.com/KirkDiggler/rollengine/internal/worker"
	"github.com/spf13/cobra"
)

// errRefused is returned when the pipeline will not take the roll
var errRefused = errors.New("roll refused: the rolling system is extremely busy")

const resultTimeout = 10 * time.Second

var (
	seedFlag int64
	asFlag   string
)

var rootCmd = &cobra.Command{
	Use:           "roll",
	Short:         "roll - dice expressions, preset rolls and character scores",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var calcCmd = &cobra.Command{
	Use:   "calc <expression> [text...]",
	Short: "Evaluate an arithmetic or dice expression",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoll(cmd, models.RollTypeCalc, args)
	},
}

var presetCmd = &cobra.Command{
	Use:   "preset <name|expression> [params...] [text...]",
	Short: "Roll a preset such as wod, exalted or craps, or a plain expression",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoll(cmd, models.RollTypeRoll, args)
	},
}

var scoresCmd = &cobra.Command{
	Use:   "scores <system> [method] [text...]",
	Short: "Generate character scores (dnd or nh)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoll(cmd, models.RollTypeScores, args)
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "Seed for the dice (default ROLL_SEED, or the time)")
	rootCmd.PersistentFlags().StringVar(&asFlag, "as", "", "Roll as this display name, enabling flavor rolls")
	rootCmd.AddCommand(calcCmd, presetCmd, scoresCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// runRoll is the command handler shared by every subcommand
func runRoll(cmd *cobra.Command, rollType models.RollType, args []string) error {
	seed := seedFlag
	if !cmd.Flags().Changed("seed") {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		seed = cfg.RollSeed
	}

	return rollWithOptions(cmd.Context(), RollOptions{
		Type:       rollType,
		Expression: args,
		As:         asFlag,
		Seed:       seed,
		Stdout:     cmd.OutOrStdout(),
	})
}

// RollOptions describe one roll from the command line
type RollOptions struct {
	Type       models.RollType
	Expression []string
	As         string
	Seed       int64
	Stdout     io.Writer
}

// rollWithOptions runs a single roll through the pipeline and prints its
// lines
func rollWithOptions(ctx context.Context, opts RollOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	engine, err := rollService.New(&rollService.Config{
		Dice: dice.New(&dice.Config{Seed: opts.Seed}),
	})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	pipeline, err := worker.New(&worker.Config{
		Engine:    engine,
		Clock:     clock.New(),
		QueueSize: 1,
	})
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}
	defer pipeline.Shutdown(context.Background())

	roll := &models.Roll{
		ID:         uuid.New().NewID(),
		Type:       opts.Type,
		Expression: opts.Expression,
		Source:     "cli",
		Target:     "-",
	}
	if opts.As != "" {
		roll.Output = models.OutputSelf
		roll.Extra = []string{opts.As}
	}

	if !pipeline.Submit(roll) {
		return errRefused
	}

	ctx, cancel := context.WithTimeout(ctx, resultTimeout)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for results: %w", ctx.Err())
		case <-pipeline.Ready():
			if results := pipeline.Drain(); results != nil {
				return printResults(opts.Stdout, results)
			}
		}
	}
}

// printResults writes each line prefixed by its kind
func printResults(w io.Writer, results *models.RollResults) error {
	lines, err := results.Lines()
	if err != nil {
		return err
	}

	for _, line := range lines {
		var text string
		switch line.Kind {
		case models.ResultNPCMessage, models.ResultNPCAction:
			text = line.Data[0] + ": " + line.Data[1]
		case models.ResultMute:
			text = line.Data[0] + " (" + line.Data[1] + "s)"
		default:
			text = strings.Join(line.Data, " ")
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", line.Kind, text); err != nil {
			return err
		}
	}
	return nil
}
