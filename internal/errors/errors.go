package errors

import "errors"

// This package defines a centralized set of sentinel errors for the assistant core.
// Services wrap these with `fmt.Errorf("...: %w", err)` and the API layer maps them
// to HTTP responses with `errors.Is()`, so no layer below the API knows about
// status codes.

var (
	// ErrNotFound signifies that a requested resource could not be located,
	// locally or on the remote agent API (HTTP 404).
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data failed validation, e.g. an empty
	// or whitespace-only chat submission.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that the operation conflicts with the current state,
	// e.g. submitting a message while another turn is still streaming.
	ErrConflict = errors.New("resource conflict")

	// ErrPermission signifies that the caller may not perform the action.
	ErrPermission = errors.New("permission denied")

	// ErrInternal signifies an unexpected local failure.
	ErrInternal = errors.New("internal server error")

	// ErrUpstream signifies that the remote agent API failed or returned a
	// non-2xx status other than 404.
	ErrUpstream = errors.New("agent api request failed")

	// ErrStreamFailed signifies that a chat turn ended in failure. The partial
	// agent message stays in the transcript flagged with streaming_error.
	ErrStreamFailed = errors.New("agent response stream failed")

	// ErrStreamStalled signifies that no event arrived within the idle timeout.
	ErrStreamStalled = errors.New("agent response stream stalled")

	// ErrCancelled signifies that a turn was aborted on purpose (new chat,
	// agent switch, explicit cancel). It is not a failure.
	ErrCancelled = errors.New("turn cancelled")
)
