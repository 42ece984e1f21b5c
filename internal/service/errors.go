package service

import "fmt"

// ModelBlockedError means the generative upstream refused to produce output
// for the prompt. Surfaced to the caller as a client error.
type ModelBlockedError struct {
	Detail string
}

func (e *ModelBlockedError) Error() string {
	return fmt.Sprintf("model output blocked: %s", e.Detail)
}

// ModelFormatError means the generative upstream answered successfully but
// the response carried no output text. Surfaced as a bad-gateway error.
type ModelFormatError struct {
	Reason string
}

func (e *ModelFormatError) Error() string {
	return fmt.Sprintf("unexpected model response format: %s", e.Reason)
}

// ModelCallError wraps any transport or API-level failure of the model call.
type ModelCallError struct {
	Err error
}

func (e *ModelCallError) Error() string {
	return fmt.Sprintf("model call failed: %v", e.Err)
}

func (e *ModelCallError) Unwrap() error {
	return e.Err
}

// ModelOutputError is returned instead of a degraded result when strict
// output mode is enabled and the model's text fails normalization.
type ModelOutputError struct {
	Raw      string
	Detail   string
	Location string
}

func (e *ModelOutputError) Error() string {
	return fmt.Sprintf("model output unparseable: %s", e.Detail)
}
