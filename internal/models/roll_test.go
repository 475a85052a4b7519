package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollValidate(t *testing.T) {
	tests := []struct {
		name string
		roll *Roll
		want error
	}{
		{"nil", nil, ErrEmptyExpression},
		{"no expression", &Roll{}, ErrEmptyExpression},
		{"blank expression", &Roll{Expression: []string{""}}, ErrEmptyExpression},
		{"plain", &Roll{Expression: []string{"1d6"}}, nil},
		{"self without name", &Roll{Output: OutputSelf, Expression: []string{"1d6"}}, ErrMissingRequester},
		{"self", &Roll{Output: OutputSelf, Expression: []string{"1d6"}, Extra: []string{"Ann"}}, nil},
		{"channel without target", &Roll{Output: OutputToChannel, Expression: []string{"1d6"}, Extra: []string{"Ann"}}, ErrMissingTarget},
		{"channel", &Roll{Output: OutputToChannel, Expression: []string{"1d6"}, Extra: []string{"Ann", "#dice"}}, nil},
		{"user without target", &Roll{Output: OutputToUser, Expression: []string{"1d6"}, Extra: []string{"Ann"}}, ErrMissingTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.roll.Validate(), tt.want)
		})
	}
}

func TestOutputType(t *testing.T) {
	assert.False(t, OutputPlain.IsChat())
	assert.True(t, OutputSelf.IsChat())
	assert.True(t, OutputToChannel.IsChat())
	assert.True(t, OutputToUser.IsChat())

	assert.False(t, OutputSelf.HasByline())
	assert.True(t, OutputToChannel.HasByline())
	assert.True(t, OutputToUser.HasByline())
}

func TestRestrictionLevel(t *testing.T) {
	assert.True(t, RestrictionNone.IsValid())
	assert.True(t, RestrictionDisabled.IsValid())
	assert.False(t, RestrictionLevel("q").IsValid())

	assert.Equal(t, "everyone", RestrictionNone.Description())
	assert.Equal(t, "members with a role", RestrictionRoled.Description())
	assert.Equal(t, "moderators", RestrictionModerators.Description())
}
