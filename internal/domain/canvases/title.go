package canvases

import (
	"fmt"
	"regexp"
	"strings"
)

/*
	Copy-title policy
	-----------------
	When a user forks a canvas without naming it, the new title is
	"Copy of <source title>". If the user already owns canvases whose titles
	start with that base, the new title gets a numeric suffix one above the
	highest suffix found among them.

	Only titles ending in "(N)" feed the count. A bare "Copy of X" matches
	the prefix scan but parses to no number, so the first numbered copy after
	it becomes "Copy of X (1)". The prefix scan ignores case; the suffix
	parse does not, so a lowercase copy also contributes no number. That leaves a bare-title collision possible;
	it is the historical behavior and is kept on purpose.
*/

var copyNumberRe = regexp.MustCompile(`Copy of .+? \((\d+)\)$`)

// CopyTitle returns the base candidate title for a copy of sourceTitle.
func CopyTitle(sourceTitle string) string {
	return "Copy of " + sourceTitle
}

// HasCopyPrefix reports whether title starts with base, ignoring case.
func HasCopyPrefix(title, base string) bool {
	if len(title) < len(base) {
		return false
	}
	return strings.EqualFold(title[:len(base)], base)
}

// NextCopyTitle picks the title for a new copy given the base candidate and
// the titles of the user's existing copies (already prefix-filtered). With no
// existing copies the base is used as-is, unnumbered.
func NextCopyTitle(base string, existing []string) string {
	if len(existing) == 0 {
		return base
	}

	highest := 0
	for _, title := range existing {
		m := copyNumberRe.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(m[1], "%d", &n); err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}

	return fmt.Sprintf("%s (%d)", base, highest+1)
}
