package str

import (
	"strings"
)

// NormalizeSpace trims an utterance and collapses internal whitespace runs
// to single spaces, so spacing never changes what the models see
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
