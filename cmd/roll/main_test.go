package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/KirkDiggler/rollengine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollCalc(t *testing.T) {
	var out bytes.Buffer
	err := rollWithOptions(context.Background(), RollOptions{
		Type:       models.RollTypeCalc,
		Expression: []string{"2*(3+4)", "damage"},
		Seed:       1,
		Stdout:     &out,
	})
	require.NoError(t, err)

	assert.Equal(t, "message: <Results [2*(3+4)]: 14> damage\n", out.String())
}

func TestRollCalcError(t *testing.T) {
	var out bytes.Buffer
	err := rollWithOptions(context.Background(), RollOptions{
		Type:       models.RollTypeCalc,
		Expression: []string{"(1+2"},
		Seed:       1,
		Stdout:     &out,
	})
	require.NoError(t, err)

	assert.Equal(t, "error: Error parsing expression.\n"+
		"error: Missing closing parenthesis:\n"+
		"error: (1+2\n"+
		"error: ----^\n", out.String())
}

func TestRollFlavorNeedsName(t *testing.T) {
	var out bytes.Buffer
	err := rollWithOptions(context.Background(), RollOptions{
		Type:       models.RollTypeRoll,
		Expression: []string{"rick"},
		Seed:       1,
		Stdout:     &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "error: This easter egg is not available here.\n", out.String())

	out.Reset()
	err = rollWithOptions(context.Background(), RollOptions{
		Type:       models.RollTypeRoll,
		Expression: []string{"rick"},
		As:         "Ann",
		Seed:       1,
		Stdout:     &out,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "action: dances in, and begins to sing\n")
	assert.Contains(t, out.String(), "error: That'll be $750.\n")
}

func TestRollSeedIsRepeatable(t *testing.T) {
	roll := func() string {
		var out bytes.Buffer
		require.NoError(t, rollWithOptions(context.Background(), RollOptions{
			Type:       models.RollTypeScores,
			Expression: []string{"dnd", "4"},
			Seed:       42,
			Stdout:     &out,
		}))
		return out.String()
	}

	first := roll()
	assert.Contains(t, first, "message: <D&D Ability Scores [Method: 4]>\n")
	assert.Equal(t, first, roll())
}

func TestPrintResults(t *testing.T) {
	results := &models.RollResults{}
	results.AddNPCMessage("OperServ", "**FREEZE!**")
	results.AddMute("Say no to drugs!", 42)

	var out bytes.Buffer
	require.NoError(t, printResults(&out, results))
	assert.Equal(t, "npc: OperServ: **FREEZE!**\nmute: Say no to drugs! (42s)\n", out.String())
}

func TestCommandsRequireArguments(t *testing.T) {
	rootCmd.SetArgs([]string{"calc"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	assert.Error(t, rootCmd.Execute())
}
