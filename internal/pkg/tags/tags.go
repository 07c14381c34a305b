package tags

import (
	"regexp"
	"strings"

	"exposurelog-be/internal/pkg/apperror"
)

// A tag is a word starting with a letter, followed by letters, digits,
// underscores or dashes. Dashes are stored as underscores so that stored
// and queried tags always compare equal.
var tagRegex = regexp.MustCompile(`^[a-zA-Z][-_a-zA-Z0-9]*$`)

// Normalize validates and canonicalizes a list of tags: lowercase,
// with "-" replaced by "_". The same normalization is applied on every
// write and every read-filter path.
func Normalize(raw []string) ([]string, error) {
	normalized := make([]string, len(raw))
	for i, tag := range raw {
		if !tagRegex.MatchString(tag) {
			return nil, apperror.BadRequest(
				"invalid tag %q: a tag must start with a letter and contain only letters, digits, underscores and dashes", tag)
		}
		normalized[i] = strings.ToLower(strings.ReplaceAll(tag, "-", "_"))
	}
	return normalized, nil
}
