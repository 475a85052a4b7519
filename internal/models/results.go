package models

import (
	"fmt"
	"strconv"
)

// ResultKind says how a result line is meant to be displayed
type ResultKind int

const (
	// ResultError is shown only to the requester
	ResultError ResultKind = iota

	// ResultMessage is a plain result message
	ResultMessage

	// ResultAction is an emote by the rolling system
	ResultAction

	// ResultNPCMessage is a message spoken by a named NPC (name, message)
	ResultNPCMessage

	// ResultNPCAction is an emote by a named NPC (name, action)
	ResultNPCAction

	// ResultScene is a scene description
	ResultScene

	// ResultKick removes the requester from the channel (reason)
	ResultKick

	// ResultMute silences the requester for a while (reason, seconds)
	ResultMute
)

// Arity is the number of data entries a line of this kind consumes
func (k ResultKind) Arity() int {
	switch k {
	case ResultNPCMessage, ResultNPCAction, ResultMute:
		return 2
	default:
		return 1
	}
}

// IsModeration reports whether the kind is an action for the host to carry
// out rather than chat content
func (k ResultKind) IsModeration() bool {
	return k == ResultKick || k == ResultMute
}

// String returns a short lowercase label
func (k ResultKind) String() string {
	switch k {
	case ResultError:
		return "error"
	case ResultMessage:
		return "message"
	case ResultAction:
		return "action"
	case ResultNPCMessage:
		return "npc"
	case ResultNPCAction:
		return "npc-action"
	case ResultScene:
		return "scene"
	case ResultKick:
		return "kick"
	case ResultMute:
		return "mute"
	default:
		return "unknown"
	}
}

// Line is one decoded result line
type Line struct {
	Kind ResultKind
	Data []string
}

// RollResults holds the output of one roll. Types is in presentation order
// and each entry consumes Kind.Arity() consecutive entries of Data.
type RollResults struct {
	// RollID, Source and Target are copied from the roll
	RollID string
	Source string
	Target string

	Types []ResultKind
	Data  []string
}

// AddError adds a line shown only to the requester
func (r *RollResults) AddError(msg string) {
	r.Types = append(r.Types, ResultError)
	r.Data = append(r.Data, msg)
}

// AddMessage adds a plain message
func (r *RollResults) AddMessage(msg string) {
	r.Types = append(r.Types, ResultMessage)
	r.Data = append(r.Data, msg)
}

// AddAction adds an emote
func (r *RollResults) AddAction(action string) {
	r.Types = append(r.Types, ResultAction)
	r.Data = append(r.Data, action)
}

// AddNPCMessage adds a message spoken by an NPC
func (r *RollResults) AddNPCMessage(npc, msg string) {
	r.Types = append(r.Types, ResultNPCMessage)
	r.Data = append(r.Data, npc, msg)
}

// AddNPCAction adds an emote by an NPC
func (r *RollResults) AddNPCAction(npc, action string) {
	r.Types = append(r.Types, ResultNPCAction)
	r.Data = append(r.Data, npc, action)
}

// AddScene adds a scene message
func (r *RollResults) AddScene(msg string) {
	r.Types = append(r.Types, ResultScene)
	r.Data = append(r.Data, msg)
}

// AddKick asks the host to remove the requester from the channel
func (r *RollResults) AddKick(reason string) {
	r.Types = append(r.Types, ResultKick)
	r.Data = append(r.Data, reason)
}

// AddMute asks the host to silence the requester for duration seconds
func (r *RollResults) AddMute(reason string, duration int) {
	r.Types = append(r.Types, ResultMute)
	r.Data = append(r.Data, reason, strconv.Itoa(duration))
}

// Clear removes every line
func (r *RollResults) Clear() {
	r.Types = r.Types[:0]
	r.Data = r.Data[:0]
}

// Len returns the number of lines
func (r *RollResults) Len() int {
	return len(r.Types)
}

// Validate checks the arity invariant between Types and Data
func (r *RollResults) Validate() error {
	want := 0
	for _, kind := range r.Types {
		want += kind.Arity()
	}
	if want != len(r.Data) {
		return fmt.Errorf("results have %d data entries, kinds require %d", len(r.Data), want)
	}
	return nil
}

// Lines decodes the results into lines, in presentation order
func (r *RollResults) Lines() ([]Line, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(r.Types))
	pos := 0
	for _, kind := range r.Types {
		n := kind.Arity()
		lines = append(lines, Line{Kind: kind, Data: r.Data[pos : pos+n]})
		pos += n
	}
	return lines, nil
}

// OnlyErrors reports whether every line is an error line
func (r *RollResults) OnlyErrors() bool {
	for _, kind := range r.Types {
		if kind != ResultError {
			return false
		}
	}
	return true
}
