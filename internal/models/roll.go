package models

import (
	"errors"
	"time"
)

// RollType determines how a roll's expression is interpreted
type RollType int

const (
	// RollTypeCalc is a plain arithmetic/dice expression with no presets
	RollTypeCalc RollType = iota

	// RollTypeRoll is either a preset roll or a generic expression
	RollTypeRoll

	// RollTypeScores is a request for generated character scores
	RollTypeScores
)

// String returns the lowercase name of the roll type
func (t RollType) String() string {
	switch t {
	case RollTypeCalc:
		return "calc"
	case RollTypeRoll:
		return "roll"
	case RollTypeScores:
		return "scores"
	default:
		return "unknown"
	}
}

// OutputType tells the engine where results are going, which decides the
// line kinds it may produce and whether a byline is added
type OutputType int

const (
	// OutputPlain is a generic roll with no extra information
	OutputPlain OutputType = iota

	// OutputSelf is shown only to the requester. Extra[0] is the requester's name.
	OutputSelf

	// OutputToChannel is sent to a channel. Extra[0] is the requester's name,
	// Extra[1] the channel's name.
	OutputToChannel

	// OutputToUser is sent privately to another user. Extra[0] is the
	// requester's name, Extra[1] the target user's name.
	OutputToUser
)

// IsChat reports whether the output goes to a chat audience, which is where
// flavor rolls are allowed
func (o OutputType) IsChat() bool {
	return o == OutputSelf || o == OutputToChannel || o == OutputToUser
}

// HasByline reports whether result lines name the requester
func (o OutputType) HasByline() bool {
	return o == OutputToChannel || o == OutputToUser
}

// ErrEmptyExpression is returned when a roll has nothing to roll
var ErrEmptyExpression = errors.New("roll expression cannot be empty")

// ErrMissingRequester is returned when a chat roll has no requester name
var ErrMissingRequester = errors.New("roll requires the requester's name")

// ErrMissingTarget is returned when a targeted roll has no target name
var ErrMissingTarget = errors.New("roll requires the target's name")

// Roll is a single request for the roll engine
type Roll struct {
	// ID correlates the roll with its results
	ID string

	// Type decides how Expression is read
	Type RollType

	// Output decides which result kinds are legal and how lines are decorated
	Output OutputType

	// Expression holds the primary expression or preset name first, then
	// preset parameters or free text
	Expression []string

	// Extra supplies context the engine cannot derive, such as display names
	Extra []string

	// Source is the host's identifier for the requester
	Source string

	// Target is "-" for the requester only, or a user or channel identifier
	Target string

	// SubmittedAt is set when the roll is handed to the pipeline
	SubmittedAt time.Time
}

// Validate checks the roll carries everything its output type requires
func (r *Roll) Validate() error {
	if r == nil || len(r.Expression) == 0 || r.Expression[0] == "" {
		return ErrEmptyExpression
	}

	if r.Output.IsChat() && len(r.Extra) < 1 {
		return ErrMissingRequester
	}

	if (r.Output == OutputToChannel || r.Output == OutputToUser) && len(r.Extra) < 2 {
		return ErrMissingTarget
	}

	return nil
}

// Requester returns the requester's display name, if known
func (r *Roll) Requester() string {
	if len(r.Extra) > 0 {
		return r.Extra[0]
	}
	return ""
}
