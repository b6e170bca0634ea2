package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorFormatting(t *testing.T) {
	err := NewInvalidConfigurationError("group size must be at least 2", nil)
	assert.Equal(t, "[INVALID_CONFIGURATION] group size must be at least 2", err.Error())

	cause := fmt.Errorf("underlying")
	wrapped := NewHistoryError("failed to read history", cause)
	assert.Contains(t, wrapped.Error(), "HISTORY_ERROR")
	assert.Contains(t, wrapped.Error(), "underlying")
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("no such file")
	err := NewFileNotFoundError("names.txt", cause)
	assert.ErrorIs(t, err, cause)

	var domainErr DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, ErrCodeFileNotFound, domainErr.Code)
}

func TestNewInsufficientParticipantsError(t *testing.T) {
	err := NewInsufficientParticipantsError(3, 5)

	var domainErr DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, ErrCodeInsufficientParticipants, domainErr.Code)
	assert.Contains(t, err.Error(), "3 participants")
	assert.Contains(t, err.Error(), "group of 5")
}

func TestParseOutputFormat(t *testing.T) {
	for _, valid := range []string{"text", "json", "yaml", "csv"} {
		format, err := ParseOutputFormat(valid)
		assert.NoError(t, err)
		assert.Equal(t, OutputFormat(valid), format)
	}

	_, err := ParseOutputFormat("html")
	assert.Error(t, err)

	var domainErr DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, ErrCodeUnsupportedFormat, domainErr.Code)
}

func TestGroupEmails(t *testing.T) {
	g := Group{Members: []Member{
		{Email: "a@x.com", Name: "A"},
		{Email: "b@x.com", Name: "B"},
	}}
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, g.Emails())
}
