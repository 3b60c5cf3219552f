package services

import (
	"errors"
	"fmt"
)

var (
	ErrUploadInProgress = errors.New("an upload is already being processed")
	ErrChatInProgress   = errors.New("a chat message is already being sent")
	ErrWorkerStopped    = errors.New("upload worker stopped")
	ErrQueueFull        = errors.New("upload queue is full")
)

const (
	MsgOnlyPDF          = "Only PDF files are allowed."
	MsgFileTooLarge     = "File size must be less than 5MB."
	MsgProcessingFailed = "Error processing resume"
	MsgNoAnswer         = "No answer found"
	MsgChatFailed       = "Error getting response. Please try again."
)

// ValidationError is raised before any network call and is shown to the
// user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TransportError covers unreachable hosts and non-2xx answers.
// ServerMessage holds the "error" field of the response body, if any.
type TransportError struct {
	Operation     string
	StatusCode    int
	ServerMessage string
	Err           error
}

func (e *TransportError) Error() string {
	switch {
	case e.ServerMessage != "":
		return fmt.Sprintf("%s failed with status %d: %s", e.Operation, e.StatusCode, e.ServerMessage)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s failed with status %d", e.Operation, e.StatusCode)
	default:
		return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError means the service answered 2xx with a body we could not read.
type ProtocolError struct {
	Operation string
	Err       error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s returned an unreadable response: %v", e.Operation, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// UserMessage picks what the user sees for a failed upload: the server's
// own message when it sent one, otherwise a generic line.
func UserMessage(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		if transportErr.ServerMessage != "" {
			return transportErr.ServerMessage
		}
		if transportErr.StatusCode != 0 {
			return fmt.Sprintf("Processing failed: %d", transportErr.StatusCode)
		}
	}

	return MsgProcessingFailed
}
