// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish a missing row from a failing store.  Inactive
// events are reported exactly like absent ones.
package repository

import (
	"errors"
	"strings"
)

// ErrEventNotFound is returned when an event does not exist or is inactive.
// Handlers should translate this into an HTTP 404 response.
var ErrEventNotFound = errors.New("event not found")

// ErrSeatNotFound is returned when a seat does not exist or belongs to an
// inactive event. Handlers should translate this into an HTTP 404 response.
var ErrSeatNotFound = errors.New("seat not found")

// likeEscaper neutralises LIKE wildcards in user supplied text.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased "%text%" pattern for case-insensitive
// substring matching with LIKE.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
}
