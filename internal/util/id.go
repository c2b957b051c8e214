// Package util provides utility functions for the resource tracker.
package util

import (
	"strconv"

	"github.com/google/uuid"
)

// seedNamespace scopes name-based ids generated for sample data.
var seedNamespace = uuid.MustParse("6f1c2f0e-3b8a-4d52-9a57-5e2a7c1d9b40")

// NewID returns a UUIDv7 record identifier. Its leading 48 bits are Unix
// milliseconds, so ids sort by creation time.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// DeterministicID returns the same UUIDv5 for the same seed. It exists for
// sample data and tests; user records use NewID.
func DeterministicID(seed int64) string {
	return uuid.NewSHA1(seedNamespace, strconv.AppendInt(nil, seed, 10)).String()
}
