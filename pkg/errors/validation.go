package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeName validates a node name for safety and correctness.
// Node names are opaque keys, but they flow into serialized documents,
// cache keys, and URL paths, so a few conservative rules apply:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateNodeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "node name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "node name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node name contains invalid control characters")
		}
	}

	return nil
}

// ValidateNetworkName validates a network name used as a storage key.
// It ensures the name is a simple identifier without path components,
// so it is safe to embed in file paths, URLs, and database queries.
func ValidateNetworkName(name string) error {
	if err := ValidateNodeName(name); err != nil {
		return err
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "network name cannot contain path separators")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidInput, "network name cannot start with a dot")
	}

	return nil
}

// ValidateStates validates a state-label list for a node.
// State labels are order-significant (a state's index is its tensor-axis
// position), must be non-empty, and must be unique within the node.
func ValidateStates(states []string) error {
	if len(states) == 0 {
		return New(ErrCodeInvalidInput, "state list cannot be empty")
	}

	seen := make(map[string]struct{}, len(states))
	for _, s := range states {
		if s == "" {
			return New(ErrCodeInvalidInput, "state label cannot be empty")
		}
		if _, dup := seen[s]; dup {
			return New(ErrCodeInvalidInput, "duplicate state label %q", s)
		}
		seen[s] = struct{}{}
	}

	return nil
}
