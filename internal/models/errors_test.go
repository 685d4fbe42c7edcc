package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestUpstreamError_Message(t *testing.T) {
	err := &UpstreamError{StatusCode: 403, Detail: "quota exceeded"}
	if got := err.Error(); got != "youtube api returned status 403: quota exceeded" {
		t.Fatalf("unexpected error message: %q", got)
	}
}

func TestSentinelWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w for handle", ErrChannelNotFound)
	if !errors.Is(wrapped, ErrChannelNotFound) {
		t.Fatalf("expected wrapped error to match ErrChannelNotFound")
	}
}

func TestMaskConnectionString(t *testing.T) {
	masked := maskConnectionString("sqlitecloud://host:8860/db?apikey=secret123")
	if masked != "sqlitecloud://host:8860/db?apikey=***" {
		t.Fatalf("expected masked apikey, got %q", masked)
	}

	plain := maskConnectionString("sqlitecloud://host:8860/db")
	if plain != "sqlitecloud://host:8860/db" {
		t.Fatalf("expected untouched string, got %q", plain)
	}
}
