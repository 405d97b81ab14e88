package util

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/json"
)

// MaxStringLength caps the length of the values rendered into logs and error messages. Zero
// disables truncation.
var MaxStringLength = 512

// Stringify renders a value as JSON for logs and error messages, falling back to the Go syntax
// representation when the value cannot be marshaled. Long renderings are truncated.
func Stringify(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return Truncate(fmt.Sprintf("%#v", v))
	}
	return Truncate(string(b))
}

// Truncate shortens s to MaxStringLength bytes, marking the cut with the number of bytes dropped.
func Truncate(s string) string {
	if MaxStringLength <= 0 || len(s) <= MaxStringLength {
		return s
	}
	return fmt.Sprintf("%s...(%d more bytes)", s[:MaxStringLength], len(s)-MaxStringLength)
}
