package drawing

import "errors"

var (
	// ErrMissingInput — a required input is empty; the model is never invoked.
	ErrMissingInput = errors.New("drawing: missing required input")

	// ErrBusy — the action slot already has a request in flight.
	ErrBusy = errors.New("drawing: request already in flight")

	// ErrNotReady — no successful notes result is available.
	ErrNotReady = errors.New("drawing: no notes available")

	// ErrModelInvocation — the model call failed at the transport/service level.
	ErrModelInvocation = errors.New("drawing: model invocation failed")

	// ErrMalformedResponse — the structured reply was not valid JSON or is
	// missing one of the four required fields.
	ErrMalformedResponse = errors.New("drawing: malformed model response")
)
