package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDomainError(t *testing.T) {
	baseErr := errors.New("base error")
	domainErr := NewDomainError(ErrorTypeExternal, "activity store unavailable", baseErr)

	assert.Equal(t, ErrorTypeExternal, domainErr.Type)
	assert.Equal(t, "activity store unavailable", domainErr.Message)
	assert.Equal(t, baseErr, domainErr.Err)
	assert.NotNil(t, domainErr.Details)
}

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *DomainError
		wantMsg string
	}{
		{
			name: "error with wrapped error",
			err: &DomainError{
				Type:    ErrorTypeExternal,
				Message: "activity store unavailable",
				Err:     errors.New("connection refused"),
			},
			wantMsg: "external: activity store unavailable (connection refused)",
		},
		{
			name: "error without wrapped error",
			err: &DomainError{
				Type:    ErrorTypeValidation,
				Message: "invalid input",
			},
			wantMsg: "validation: invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestDomainError_UnwrapAndIs(t *testing.T) {
	baseErr := errors.New("base error")
	domainErr := NewDomainError(ErrorTypeExternal, "store down", baseErr)

	assert.Equal(t, baseErr, errors.Unwrap(domainErr))
	assert.ErrorIs(t, domainErr, baseErr)
	assert.ErrorIs(t, domainErr, ErrActivityStoreUnavailable)
	assert.NotErrorIs(t, domainErr, ErrInvalidInput)
	assert.False(t, domainErr.Is(baseErr))
}

func TestDomainError_WithDetail(t *testing.T) {
	err := (&DomainError{Type: ErrorTypeValidation, Message: "bad"}).WithDetail("field", "email")
	assert.Equal(t, "email", err.Details["field"])
	assert.Equal(t, map[string]interface{}{"field": "email"}, GetErrorDetails(err))
}

func TestWrapFieldValidation(t *testing.T) {
	err := WrapFieldValidation("skills", "at least one skill is required", ErrInvalidInput)

	assert.True(t, IsValidationError(err))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, map[string]interface{}{"field": "skills"}, GetErrorDetails(err))
}

func TestErrorTypeHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		validation bool
		external   bool
	}{
		{name: "validation", err: WrapFieldValidation("email", "bad email", errors.New("x")), validation: true},
		{name: "external", err: WrapExternal("store down", errors.New("x")), external: true},
		{name: "wrapped with fmt", err: fmt.Errorf("record: %w", ErrActivityStoreUnavailable), external: true},
		{name: "plain error", err: errors.New("plain")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, IsValidationError(tt.err))
			assert.Equal(t, tt.external, IsExternalError(tt.err))
		})
	}

	assert.Equal(t, ErrorType(""), GetErrorType(errors.New("plain")))
	assert.Nil(t, GetErrorDetails(errors.New("plain")))
}
