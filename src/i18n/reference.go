// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package i18n

import (
	"fmt"
	"strconv"
	"strings"
)

// A ReferenceContext is a location in the source code where a message is used
type ReferenceContext struct {
	Path string
	// Line is the 1-based line number, 0 if unknown
	Line int
}

// String returns the reference as written in a '#:' comment,
// i.e. "path:line" or "path" when the line is unknown.
func (rc ReferenceContext) String() string {
	if rc.Line <= 0 {
		return rc.Path
	}
	return fmt.Sprintf("%s:%d", rc.Path, rc.Line)
}

// ParseReference parses a reference as written in a '#:' comment.
// The part after the last colon is taken as the line number only if it
// is a positive integer, so that paths with colons are kept whole.
func ParseReference(s string) ReferenceContext {
	s = strings.TrimSpace(s)
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return ReferenceContext{Path: s}
	}
	line, err := strconv.Atoi(s[idx+1:])
	if err != nil || line <= 0 {
		return ReferenceContext{Path: s}
	}
	return ReferenceContext{Path: s[:idx], Line: line}
}
