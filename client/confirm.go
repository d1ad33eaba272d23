package client

import (
	"context"
	"fmt"
	"log"
)

// FlowState is the confirmation dialog's state.
type FlowState int

const (
	// FlowIdle means no toggle is pending
	FlowIdle FlowState = iota
	// FlowPending means the dialog is open awaiting a decision
	FlowPending
)

// ToggleFunc flips the record's active flag on the server.
type ToggleFunc func(ctx context.Context, id uint) error

// ConfirmFlow guards every status toggle behind an explicit confirmation.
// The dialog wording is fixed from the row's active flag at the moment the
// toggle was requested, so a concurrent change elsewhere cannot make the
// dialog promise one thing and do another.
type ConfirmFlow struct {
	state     FlowState
	entityID  uint
	label     string
	wasActive bool

	// Toggle performs the server call on confirmation
	Toggle ToggleFunc
	// Reload refreshes the backing list after a completed toggle
	Reload func(ctx context.Context)
	// OnPrompt receives the dialog question when the flow opens
	OnPrompt func(question string)
	// OnError receives a user-facing message when the toggle fails
	OnError func(message string)
}

// State returns the current flow state.
func (f *ConfirmFlow) State() FlowState {
	return f.state
}

// Request opens the confirmation dialog for one row. label names the record
// in the prompt; active is the row's flag as currently displayed.
func (f *ConfirmFlow) Request(id uint, label string, active bool) {
	f.state = FlowPending
	f.entityID = id
	f.label = label
	f.wasActive = active

	verb := "activate"
	if active {
		verb = "deactivate"
	}
	if f.OnPrompt != nil {
		f.OnPrompt(fmt.Sprintf("Are you sure you want to %s %q?", verb, label))
	}
}

// Cancel closes the dialog without touching the record.
func (f *ConfirmFlow) Cancel() {
	f.state = FlowIdle
}

// Confirm performs the toggle. Failures are logged and surfaced to the user;
// on success the backing list reloads so the grid reflects the stored state.
func (f *ConfirmFlow) Confirm(ctx context.Context) error {
	if f.state != FlowPending {
		return nil
	}
	f.state = FlowIdle

	if err := f.Toggle(ctx, f.entityID); err != nil {
		log.Printf("Status toggle failed for %s (id %d): %v", f.label, f.entityID, err)
		if f.OnError != nil {
			f.OnError(err.Error())
		}
		return err
	}

	if f.Reload != nil {
		f.Reload(ctx)
	}
	return nil
}
