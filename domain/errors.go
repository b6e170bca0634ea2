package domain

import (
	"fmt"
)

// DomainError represents errors in the domain layer
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e DomainError) Unwrap() error {
	return e.Cause
}

// Domain error codes
const (
	ErrCodeInvalidConfiguration      = "INVALID_CONFIGURATION"
	ErrCodeInsufficientParticipants  = "INSUFFICIENT_PARTICIPANTS"
	ErrCodeFileNotFound              = "FILE_NOT_FOUND"
	ErrCodeRosterParseError          = "ROSTER_PARSE_ERROR"
	ErrCodeHistoryError              = "HISTORY_ERROR"
	ErrCodeConfigError               = "CONFIG_ERROR"
	ErrCodeOutputError               = "OUTPUT_ERROR"
	ErrCodeUnsupportedFormat         = "UNSUPPORTED_FORMAT"
	ErrCodeGroupingError             = "GROUPING_ERROR"
)

// NewDomainError creates a new domain error
func NewDomainError(code, message string, cause error) error {
	return DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidConfigurationError creates an error for degenerate grouping
// parameters (group size below 2, empty participant set).
func NewInvalidConfigurationError(message string, cause error) error {
	return NewDomainError(ErrCodeInvalidConfiguration, message, cause)
}

// NewInsufficientParticipantsError creates an error for rosters smaller
// than a single group.
func NewInsufficientParticipantsError(participants, groupSize int) error {
	return NewDomainError(ErrCodeInsufficientParticipants,
		fmt.Sprintf("%d participants cannot fill a group of %d", participants, groupSize), nil)
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string, cause error) error {
	return NewDomainError(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path), cause)
}

// NewRosterParseError creates a roster parse error
func NewRosterParseError(path string, cause error) error {
	return NewDomainError(ErrCodeRosterParseError, fmt.Sprintf("failed to parse roster: %s", path), cause)
}

// NewHistoryError creates an error for unreadable or unwritable history
func NewHistoryError(message string, cause error) error {
	return NewDomainError(ErrCodeHistoryError, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) error {
	return NewDomainError(ErrCodeConfigError, message, cause)
}

// NewOutputError creates an output error
func NewOutputError(message string, cause error) error {
	return NewDomainError(ErrCodeOutputError, message, cause)
}

// NewUnsupportedFormatError creates an unsupported format error
func NewUnsupportedFormatError(format string) error {
	return NewDomainError(ErrCodeUnsupportedFormat, fmt.Sprintf("unsupported format: %s", format), nil)
}

// NewGroupingError creates an error for a failed group generation
func NewGroupingError(message string, cause error) error {
	return NewDomainError(ErrCodeGroupingError, message, cause)
}
