package store

import (
	"encoding/json"
	"fmt"
)

// StateKind enumerates the loading states of a store.
type StateKind int

const (
	StateNotLoaded StateKind = iota
	StateLoading
	StateLoaded
	StateError
)

func (k StateKind) String() string {
	switch k {
	case StateNotLoaded:
		return "not_loaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(k))
}

// LoadingState is NotLoaded, Loading, Loaded or Error(message).
// Message is only set for StateError.
type LoadingState struct {
	Kind    StateKind
	Message string
}

func NotLoaded() LoadingState { return LoadingState{Kind: StateNotLoaded} }
func Loading() LoadingState   { return LoadingState{Kind: StateLoading} }
func Loaded() LoadingState    { return LoadingState{Kind: StateLoaded} }

// Failed returns the Error state carrying msg.
func Failed(msg string) LoadingState {
	return LoadingState{Kind: StateError, Message: msg}
}

func (s LoadingState) String() string {
	if s.Kind == StateError {
		return "error: " + s.Message
	}
	return s.Kind.String()
}

// MarshalJSON renders {"status":"error","message":"..."}; message is omitted otherwise.
func (s LoadingState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status  string `json:"status"`
		Message string `json:"message,omitempty"`
	}{Status: s.Kind.String(), Message: s.Message})
}

// Mode tells an editor whether it is creating a new entity or editing an
// existing one. Edit carries only the id; the entity is resolved against the
// store when needed so the editor never works on a stale copy.
type Mode struct {
	id   int64
	edit bool
}

// AddMode is the mode for creating a new entity.
var AddMode = Mode{}

// EditMode returns the mode for editing the entity with the given id.
func EditMode(id int64) Mode {
	return Mode{id: id, edit: true}
}

func (m Mode) IsEdit() bool { return m.edit }

// ID returns the edited entity's id, or 0 in add mode.
func (m Mode) ID() int64 { return m.id }

func (m Mode) String() string {
	if m.edit {
		return fmt.Sprintf("edit(%d)", m.id)
	}
	return "add"
}
