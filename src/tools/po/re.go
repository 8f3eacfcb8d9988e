// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package po

import (
	"regexp"
	"strings"
)

const obsoletePrefix = "#~"

var (
	reMsgContext = regexp.MustCompile(`^msgctxt(\s|"|$)`) // msgctxt
	reMsgId      = regexp.MustCompile(`^msgid(\s|"|$)`)   // msgid, but not msgid_plural
	reMsgStr     = regexp.MustCompile(`^msgstr(\s|"|$)`)  // msgstr, but not msgstr[0]
	reStringLine = regexp.MustCompile(`^\s*".*"\s*$`)     // "message"
)

// isComment returns true if line belongs to a comment block.
// Historical lines ('#~') start an entry body instead.
func isComment(line string) bool {
	return strings.HasPrefix(line, "#") && !isObsolete(line)
}

// isObsolete returns true for historical entry lines
func isObsolete(line string) bool {
	return strings.HasPrefix(line, obsoletePrefix)
}

// startsBody returns true if line is the first line of an entry
// that is not preceded by comments.
func startsBody(line string) bool {
	return isObsolete(line) || reMsgContext.MatchString(line) || reMsgId.MatchString(line)
}

// isContinuation returns true if line only holds a quoted string
func isContinuation(line string) bool {
	return reStringLine.MatchString(line)
}

// stripObsolete removes the historical marker of line, if any
func stripObsolete(line string) string {
	if !isObsolete(line) {
		return line
	}
	return strings.TrimSpace(strings.TrimPrefix(line, obsoletePrefix))
}
