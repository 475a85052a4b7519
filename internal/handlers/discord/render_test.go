package discord

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/KirkDiggler/rollengine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResultsSortsLines(t *testing.T) {
	results := &models.RollResults{}
	results.AddMessage("<Results for Ann [1d20]: 12>")
	results.AddAction("throws a barrel at Ann")
	results.AddNPCMessage("BotServ", "Do a barrel roll!")
	results.AddNPCAction("OperServ", "busts into the room")
	results.AddScene("The room goes quiet.")
	results.AddError("Game over.")
	results.AddKick("shoves you down the stairs")
	results.AddMute("Say no to drugs!", 90)

	out, err := renderResults(results)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"<Results for Ann [1d20]: 12>",
		"*throws a barrel at Ann*",
		"**BotServ**: Do a barrel roll!",
		"***OperServ** busts into the room*",
		"> The room goes quiet.",
	}, out.chat)
	assert.Equal(t, []string{"Game over."}, out.errors)

	require.Len(t, out.moderation, 2)
	assert.Equal(t, models.ResultKick, out.moderation[0].Kind)
	assert.Equal(t, []string{"Say no to drugs!", "90"}, out.moderation[1].Data)
}

func TestRenderResultsRejectsBadArity(t *testing.T) {
	results := &models.RollResults{
		Types: []models.ResultKind{models.ResultNPCMessage},
		Data:  []string{"BotServ"},
	}

	_, err := renderResults(results)
	assert.Error(t, err)
}

func TestChunk(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, chunk(nil))
	})

	t.Run("fits in one", func(t *testing.T) {
		assert.Equal(t, []string{"a\nb\nc"}, chunk([]string{"a", "b", "c"}))
	})

	t.Run("splits on lines", func(t *testing.T) {
		line := strings.Repeat("x", 999)
		got := chunk([]string{line, line, line})

		require.Len(t, got, 2)
		assert.Equal(t, line+"\n"+line, got[0])
		assert.Equal(t, line, got[1])
	})

	t.Run("cuts long lines", func(t *testing.T) {
		got := chunk([]string{"head", strings.Repeat("y", maxMessageLength+10)})

		require.Len(t, got, 3)
		assert.Equal(t, "head", got[0])
		assert.Len(t, got[1], maxMessageLength)
		assert.Equal(t, strings.Repeat("y", 10), got[2])
	})
	t.Run("cuts on rune boundaries", func(t *testing.T) {
		line := "a" + strings.Repeat("é", maxMessageLength/2)
		got := chunk([]string{line})

		require.Len(t, got, 2)
		assert.Equal(t, "a"+strings.Repeat("é", maxMessageLength/2-1), got[0])
		assert.Equal(t, "é", got[1])
		for _, message := range got {
			assert.True(t, utf8.ValidString(message))
			assert.LessOrEqual(t, len(message), maxMessageLength)
		}
	})
}
