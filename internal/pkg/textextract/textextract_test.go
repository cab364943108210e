package textextract

import (
	"errors"
	"testing"

	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

func TestExtractPlainText(t *testing.T) {
	in := "Semester 1:\t\tProgramming   in C\r\n\n\n\nSemester 2: Data Structures  "
	got, err := Extract("old.txt", []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := "Semester 1: Programming in C\n\nSemester 2: Data Structures"
	if got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestExtractRejects(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		want error
	}{
		{"empty", "a.txt", nil, apperrors.ErrBadRequest},
		{"fake pdf", "a.pdf", []byte("hello"), apperrors.ErrUnsupportedFormat},
		{"binary", "a.bin", []byte{0xff, 0xfe, 0x00, 0x81}, apperrors.ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Extract(tt.file, tt.data); !errors.Is(err, tt.want) {
				t.Errorf("Extract() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExtractBrokenPDF(t *testing.T) {
	if _, err := Extract("broken.pdf", []byte("%PDF-1.4\nnot really a pdf")); err == nil {
		t.Error("expected an error for a truncated PDF")
	}
}
