package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingNode is returned when a requested node has no record.
	ErrMissingNode = errors.New("missing node")

	// ErrMalformedChoice is returned when an activated choice has no destination.
	ErrMalformedChoice = errors.New("malformed choice")

	// ErrChoiceUnavailable is returned when a selection does not match the
	// choices currently on display (wrong node, out of range, or not reading).
	ErrChoiceUnavailable = errors.New("choice not available")
)

// LoadError reports that one of the tables could not be retrieved or parsed.
// It is fatal for the session: no index is published.
type LoadError struct {
	Table Table
	// Status is the transport status code, when the source has one.
	Status int
	// Reason is a short human readable cause, e.g. "not found" or "malformed content".
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	name := e.Table.FileName("")
	switch {
	case e.Status != 0:
		return fmt.Sprintf("failed to load %s (%d %s)", name, e.Status, http.StatusText(e.Status))
	case e.Reason != "" && e.Err != nil:
		return fmt.Sprintf("failed to load %s: %s: %v", name, e.Reason, e.Err)
	case e.Reason != "":
		return fmt.Sprintf("failed to load %s: %s", name, e.Reason)
	case e.Err != nil:
		return fmt.Sprintf("failed to load %s: %v", name, e.Err)
	}
	return fmt.Sprintf("failed to load %s", name)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MissingNodeError names the node id that could not be resolved.
type MissingNodeError struct {
	NodeID string
}

func (e *MissingNodeError) Error() string {
	return fmt.Sprintf("missing node in %s table: %s", TableNodes, e.NodeID)
}

func (e *MissingNodeError) Unwrap() error {
	return ErrMissingNode
}

// MalformedChoiceError names the choice that lacks a LEADS_TO value.
type MalformedChoiceError struct {
	ChoiceID string
}

func (e *MalformedChoiceError) Error() string {
	return fmt.Sprintf("choice %s has no LEADS_TO value", e.ChoiceID)
}

func (e *MalformedChoiceError) Unwrap() error {
	return ErrMalformedChoice
}
