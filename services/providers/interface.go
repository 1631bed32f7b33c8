package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	// MinTemperature and MaxTemperature bound the sampling temperature accepted by Call.Validate
	MinTemperature = 0.0
	MaxTemperature = 2.0
)

var (
	// ErrEmptyCredential is returned when a call carries no credential
	ErrEmptyCredential = errors.New("credential cannot be empty")

	// ErrEmptyModel is returned when a call carries no model identifier
	ErrEmptyModel = errors.New("model cannot be empty")

	// ErrEmptyPrompt is returned when a call carries no prompt
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrTemperatureOutOfRange is returned when the temperature is outside [MinTemperature, MaxTemperature]
	ErrTemperatureOutOfRange = errors.New("temperature out of range")
)

// Client performs exactly one generation call against a text-generation provider.
// Implementations map every result into an Outcome; they never return raw errors.
type Client interface {
	// Name returns the provider name (e.g., "gemini")
	Name() string

	// Call sends one prompt with the given credential and model
	Call(ctx context.Context, call Call) Outcome
}

// Call is the input of a single provider request
type Call struct {
	// Credential is the API key used for this request
	Credential string

	// Model identifier (e.g., "gemini-2.0-flash")
	Model string

	// Prompt is the full prompt text
	Prompt string

	// Temperature controls randomness
	Temperature float64

	// JSON asks the provider for an application/json response body
	JSON bool
}

// Validate checks the call input constraints
func (c Call) Validate() error {
	if strings.TrimSpace(c.Credential) == "" {
		return ErrEmptyCredential
	}
	if strings.TrimSpace(c.Model) == "" {
		return ErrEmptyModel
	}
	if strings.TrimSpace(c.Prompt) == "" {
		return ErrEmptyPrompt
	}
	if c.Temperature < MinTemperature || c.Temperature > MaxTemperature {
		return fmt.Errorf("%w: %v not in [%v, %v]", ErrTemperatureOutOfRange, c.Temperature, MinTemperature, MaxTemperature)
	}
	return nil
}

// OutcomeKind classifies the result of one provider call
type OutcomeKind int

const (
	// OutcomeSuccess means the provider replied with text
	OutcomeSuccess OutcomeKind = iota + 1

	// OutcomeRateLimited means the provider signalled throttling or quota exhaustion
	OutcomeRateLimited

	// OutcomeOtherFailure covers transport, auth, server and malformed-response errors
	OutcomeOtherFailure
)

// String returns the log name of the kind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRateLimited:
		return "rate_limited"
	case OutcomeOtherFailure:
		return "other_failure"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of a provider call
type Outcome struct {
	Kind OutcomeKind

	// Text holds the raw reply for OutcomeSuccess
	Text string

	// Err holds the underlying failure for the other kinds
	Err error
}

// Success builds a successful outcome
func Success(text string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Text: text}
}

// RateLimited builds a throttled outcome
func RateLimited(err error) Outcome {
	return Outcome{Kind: OutcomeRateLimited, Err: err}
}

// OtherFailure builds a non-retryable outcome
func OtherFailure(err error) Outcome {
	return Outcome{Kind: OutcomeOtherFailure, Err: err}
}

// Detail returns a printable failure description
func (o Outcome) Detail() string {
	if o.Err != nil {
		return o.Err.Error()
	}
	return ""
}

// ProviderError represents an error from a provider
type ProviderError struct {
	// Provider that generated the error
	Provider string

	// Code is the provider status code (e.g., "RESOURCE_EXHAUSTED")
	Code string

	// Message is the error message
	Message string

	// StatusCode is the HTTP status code (if applicable)
	StatusCode int

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap implements error unwrapping
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a new provider error
func NewProviderError(provider, code, message string, statusCode int, cause error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// rateLimitMarkers are matched case-insensitively against error text
var rateLimitMarkers = []string{"429", "quota", "resource_exhausted", "rate limit"}

// IsRateLimited reports whether err signals throttling or quota exhaustion.
// Typed status codes are checked first; the error text is the last resort.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}

	var provErr *ProviderError
	if errors.As(err, &provErr) {
		if provErr.StatusCode == 429 || strings.EqualFold(provErr.Code, "RESOURCE_EXHAUSTED") {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range rateLimitMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// Classify maps a provider reply into an Outcome
func Classify(text string, err error) Outcome {
	if err == nil {
		return Success(text)
	}
	if IsRateLimited(err) {
		return RateLimited(err)
	}
	return OtherFailure(err)
}
