// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package po

import (
	"bufio"
	"io"
	"strings"

	"github.com/hexya-erp/postore/src/i18n"
	"github.com/hexya-erp/postore/src/tools/logging"
	"github.com/pkg/errors"
)

const maxLineSize = 1024 * 1024

var log = logging.GetLogger("po")

// Parse reads a PO file from r and adds its entries to t.
//
// Entries whose key is already in t are merged into the existing item
// (see i18n.Translation.AddOrUnion), so that several files can be parsed
// into the same translation. owner is set as the FileName of the new items.
func (c *Codec) Parse(t *i18n.Translation, r io.Reader, owner string) error {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "unable to read PO data")
	}
	c.ParseLines(t, lines, owner)
	return nil
}

// ParseLines adds the entries of the given PO lines to t.
// Malformed entries are logged and skipped.
func (c *Codec) ParseLines(t *i18n.Translation, lines []string, owner string) {
	lr := &lineReader{lines: lines}
	for {
		line, ok := lr.next()
		if !ok {
			return
		}
		var (
			comments entryComments
			started  bool
		)
		if isComment(line) {
			started = true
			comments.add(line)
			for {
				next, ok := lr.peek()
				if !ok || !isComment(next) {
					break
				}
				lr.next()
				comments.add(next)
			}
			if line, ok = lr.next(); !ok {
				return
			}
		}
		if !started && !startsBody(line) {
			continue
		}
		item := parseBody(lr, line)
		if item == nil {
			continue
		}
		item.TranslatorComments = comments.translator
		item.ExtractedComments = comments.extracted
		item.Flags = comments.flags
		item.References = comments.references
		item.FileName = owner
		t.AddOrUnion(item)
	}
}

// parseBody parses the msgctxt, msgid and msgstr lines of an entry, line
// being the first of them. It returns nil if the entry has no msgid, if
// its msgid is empty, which is the case of the PO header, or if its msgid
// or msgctxt holds the context separator.
func parseBody(lr *lineReader, line string) *i18n.TranslationItem {
	first := line
	line = stripObsolete(line)
	if strings.TrimSpace(line) == "" {
		return nil
	}

	var msgCtxt string
	if reMsgContext.MatchString(line) {
		msgCtxt, _ = Unquote(line)
		next, ok := lr.peek()
		if !ok || !reMsgId.MatchString(stripObsolete(next)) {
			log.Warn("msgctxt without msgid", "line", first)
			return nil
		}
		lr.next()
		line = stripObsolete(next)
	}
	if !reMsgId.MatchString(line) {
		log.Warn("Entry without msgid", "line", first)
		return nil
	}

	var sb strings.Builder
	value, _ := Unquote(line)
	sb.WriteString(value)
	for {
		next, ok := lr.peek()
		if !ok {
			break
		}
		next = stripObsolete(next)
		if strings.TrimSpace(next) == "" {
			log.Warn("Empty line in msgid", "line", first)
			lr.next()
			continue
		}
		if !isContinuation(next) {
			break
		}
		value, _ = Unquote(next)
		sb.WriteString(value)
		lr.next()
	}
	msgID := Unescape(sb.String())
	if msgID == "" {
		return nil
	}
	item := &i18n.TranslationItem{
		MsgKey: i18n.MakeKey(msgID, msgCtxt),
		MsgID:  msgID,
	}

	if next, ok := lr.peek(); ok && reMsgStr.MatchString(stripObsolete(next)) {
		lr.next()
		sb.Reset()
		value, _ = Unquote(stripObsolete(next))
		sb.WriteString(value)
		for {
			next, ok := lr.peek()
			if !ok {
				break
			}
			next = stripObsolete(next)
			if !isContinuation(next) {
				break
			}
			value, _ = Unquote(next)
			sb.WriteString(value)
			lr.next()
		}
		item.Message = Unescape(sb.String())
	}
	// gettext forbids EOT in messages, keys would collide otherwise
	if strings.Contains(msgID, i18n.ContextSeparator) || strings.Contains(msgCtxt, i18n.ContextSeparator) {
		log.Warn("Context separator in msgid or msgctxt", "line", first)
		return nil
	}
	return item
}

// entryComments collects the comment block of an entry
type entryComments struct {
	translator i18n.StringSet
	extracted  i18n.StringSet
	flags      i18n.StringSet
	references []i18n.ReferenceContext
}

// add classifies the given comment line by its second character
func (ec *entryComments) add(line string) {
	if len(line) < 2 {
		return
	}
	switch line[1] {
	case '.':
		if v := strings.TrimSpace(line[2:]); v != "" {
			ec.extracted.Add(v)
		}
	case ':':
		if v := strings.TrimSpace(line[2:]); v != "" {
			ec.references = append(ec.references, i18n.ParseReference(v))
		}
	case ',':
		if v := strings.TrimSpace(line[2:]); v != "" {
			ec.flags.Add(v)
		}
	case '|':
		// previous msgid, not kept
	default:
		if v := strings.TrimSpace(line[1:]); v != "" {
			ec.translator.Add(v)
		}
	}
}

// A lineReader iterates over lines and allows looking one line ahead
type lineReader struct {
	lines []string
	pos   int
}

// next returns the next line and advances
func (lr *lineReader) next() (string, bool) {
	line, ok := lr.peek()
	if ok {
		lr.pos++
	}
	return line, ok
}

// peek returns the next line without advancing
func (lr *lineReader) peek() (string, bool) {
	if lr.pos >= len(lr.lines) {
		return "", false
	}
	return lr.lines[lr.pos], true
}
