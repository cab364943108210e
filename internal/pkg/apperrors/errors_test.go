package apperrors

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"parse", NewGenerationParseError("unexpected end", io.ErrUnexpectedEOF), ErrGenerationParse},
		{"timeout", &GenerationTimeoutError{After: time.Second}, ErrGenerationTimeout},
		{"network", &NetworkError{Op: "generate", Err: io.EOF}, ErrNetwork},
		{"wrapped network", fmt.Errorf("call: %w", &NetworkError{Op: "generate", Err: io.EOF}), ErrNetwork},
		{"validation", NewValidationError("credits", "credits must be non-negative"), ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.target)
			}
		})
	}
}

func TestGenerationParseErrorMessage(t *testing.T) {
	err := &GenerationParseError{Reason: "invalid character", Offset: 12}
	if !strings.Contains(err.Error(), "at byte 12") {
		t.Errorf("Error() = %q, want offset", err.Error())
	}

	var pe *GenerationParseError
	if !errors.As(fmt.Errorf("decode: %w", err), &pe) || pe.Offset != 12 {
		t.Errorf("errors.As did not recover the parse error")
	}
}

func TestIsAny(t *testing.T) {
	err := fmt.Errorf("edit: %w", ErrIndexOutOfRange)
	if !Is(err, ErrNoCurriculum, ErrIndexOutOfRange) {
		t.Error("Is() should match the second candidate")
	}
	if Is(err, ErrNoCurriculum) {
		t.Error("Is() matched an unrelated sentinel")
	}
}
