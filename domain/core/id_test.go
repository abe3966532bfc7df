package core

import (
	"errors"
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 1000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	if !ID("").IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}
	if ID("not-empty").IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

func TestKeys(t *testing.T) {
	keys := Keys("X1", " X2 ")
	if len(keys) != 2 || keys[0] != "X1" || keys[1] != "X2" {
		t.Fatalf("unexpected keys: %v", keys)
	}
	if got := JoinKeys(keys); got != "X1,X2" {
		t.Errorf("Expected 'X1,X2', got '%s'", got)
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"missing variable", NewVariableNotFoundError("X9"), ErrVariableNotFound},
		{"length mismatch", NewLengthMismatchError("bench", 10, 9), ErrLengthMismatch},
		{"non finite", NewNonFiniteError("pred", 3, 0), ErrNonFinite},
		{"insufficient", NewInsufficientDataError(10, 3), ErrInsufficientData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.target) {
				t.Errorf("%v does not wrap %v", tt.err, tt.target)
			}
			if errors.Is(tt.err, ErrUnknownMethod) {
				t.Errorf("%v must not be a usage error", tt.err)
			}
		})
	}
}
