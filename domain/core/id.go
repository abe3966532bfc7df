package core

import (
	"strings"

	"github.com/google/uuid"
)

// ID represents an invocation identifier used to correlate log lines
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// VariableKey names a column of an observation table
type VariableKey string

// String returns the string representation
func (k VariableKey) String() string {
	return string(k)
}

// Keys converts plain column names into variable keys
func Keys(names ...string) []VariableKey {
	keys := make([]VariableKey, len(names))
	for i, name := range names {
		keys[i] = VariableKey(strings.TrimSpace(name))
	}
	return keys
}

// JoinKeys renders keys as a comma separated list
func JoinKeys(keys []VariableKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ",")
}
