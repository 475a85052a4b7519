package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsLines(t *testing.T) {
	r := &RollResults{}
	r.AddMessage("<Results [1d6]: 4>")
	r.AddNPCAction("OperServ", "busts in")
	r.AddMute("Say no to drugs!", 125)
	r.AddError("If you get busted, I never saw you!")

	require.NoError(t, r.Validate())
	assert.Equal(t, 4, r.Len())

	lines, err := r.Lines()
	require.NoError(t, err)
	assert.Equal(t, []Line{
		{Kind: ResultMessage, Data: []string{"<Results [1d6]: 4>"}},
		{Kind: ResultNPCAction, Data: []string{"OperServ", "busts in"}},
		{Kind: ResultMute, Data: []string{"Say no to drugs!", "125"}},
		{Kind: ResultError, Data: []string{"If you get busted, I never saw you!"}},
	}, lines)
}

func TestResultsArity(t *testing.T) {
	r := &RollResults{
		Types: []ResultKind{ResultNPCMessage, ResultMessage},
		Data:  []string{"BotServ", "hello"},
	}

	assert.Error(t, r.Validate())
	_, err := r.Lines()
	assert.Error(t, err)
}

func TestResultsContent(t *testing.T) {
	r := &RollResults{}
	assert.True(t, r.OnlyErrors())

	r.AddError("Game over.")
	assert.True(t, r.OnlyErrors())

	r.AddKick("shoves you down the stairs")
	assert.False(t, r.OnlyErrors())
	assert.Equal(t, 2, r.Len())

	r.Clear()
	assert.Zero(t, r.Len())
	assert.Empty(t, r.Data)
}

func TestResultKind(t *testing.T) {
	assert.Equal(t, 2, ResultNPCMessage.Arity())
	assert.Equal(t, 2, ResultMute.Arity())
	assert.Equal(t, 1, ResultKick.Arity())

	assert.True(t, ResultKick.IsModeration())
	assert.False(t, ResultScene.IsModeration())

	assert.Equal(t, "npc-action", ResultNPCAction.String())
	assert.Equal(t, "unknown", ResultKind(99).String())
}
