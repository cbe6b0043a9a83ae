package mcsgd

import "errors"

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("mcsgd: graph is nil")

	// ErrInvalidItemCount is returned when itemCount does not split the
	// node id range into two non-empty blocks.
	ErrInvalidItemCount = errors.New("mcsgd: itemCount must split (0, NumNodes()) into two non-empty blocks")

	// ErrUnknownStepFunction is returned for a StepFunction value Run does
	// not handle.
	ErrUnknownStepFunction = errors.New("mcsgd: unknown step function")
)
