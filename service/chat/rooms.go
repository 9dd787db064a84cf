package chat

import (
	"sort"
	"strings"
)

// PairRoomID derives the deterministic room id for a two-party chat by
// sorting the participant ids and joining them. Both sides compute the
// same id without coordination; the server uses it only in tooling and
// tests, rooms themselves stay opaque strings.
func PairRoomID(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}
