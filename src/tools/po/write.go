// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package po

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hexya-erp/postore/src/i18n"
)

const (
	// DateLayout is the layout of the dates in PO headers
	DateLayout = "2006-01-02 15:04-07:00"
	// Generator is written in the X-Generator header field
	Generator = "i18n.POTGenerator"
)

// A Codec reads and writes PO files.
type Codec struct {
	// ContextFromComment makes the writer output the first extracted
	// comment of an entry as its msgctxt.
	ContextFromComment bool
	// Now returns the time used for header dates.
	Now func() time.Time
}

// NewCodec returns a Codec using the current time for header dates.
func NewCodec(contextFromComment bool) *Codec {
	return &Codec{
		ContextFromComment: contextFromComment,
		Now:                time.Now,
	}
}

// WriteTranslation writes a complete PO file with the given items to w.
//
// Items are written with referenced items first, then orphans as
// historical entries, each group sorted by key. potDate is the
// POT-Creation-Date line of the template, written verbatim. If it is
// blank, the current time is used instead and no PO-Revision-Date is
// written.
func (c *Codec) WriteTranslation(w io.Writer, items []*i18n.TranslationItem, potDate string) error {
	sorted := append([]*i18n.TranslationItem(nil), items...)
	i18n.SortItems(sorted)

	ew := &errWriter{w: bufio.NewWriter(w)}
	c.writeHeader(ew, potDate)
	for _, item := range sorted {
		orphan := item.IsOrphan()
		for _, comment := range item.TranslatorComments.Values() {
			ew.line("# " + comment)
		}
		for _, comment := range item.ExtractedComments.Values() {
			ew.line("#. " + comment)
		}
		writeReferences(ew, item.References)
		for _, flag := range item.Flags.Values() {
			ew.line("#, " + flag)
		}
		if c.ContextFromComment && item.ExtractedComments.Len() != 0 {
			writeString(ew, orphan, "msgctxt", item.ExtractedComments.First())
		}
		writeString(ew, orphan, "msgid", Escape(item.MsgID))
		writeString(ew, orphan, "msgstr", Escape(item.Message))
		ew.line("")
	}
	return ew.flush()
}

// WriteTemplate writes a POT file with the given items to w.
//
// Template entries are never written as historical entries and always
// have an empty msgstr, so that editors can load the file.
func (c *Codec) WriteTemplate(w io.Writer, items []*i18n.TemplateItem) error {
	sorted := append([]*i18n.TemplateItem(nil), items...)
	i18n.SortTemplateItems(sorted)

	ew := &errWriter{w: bufio.NewWriter(w)}
	c.writeHeader(ew, "")
	for _, item := range sorted {
		for _, comment := range item.Comments {
			ew.line("#. " + comment)
		}
		writeReferences(ew, item.References)
		if c.ContextFromComment && len(item.Comments) != 0 {
			writeString(ew, false, "msgctxt", item.Comments[0])
		}
		writeString(ew, false, "msgid", Escape(item.MsgID))
		writeString(ew, false, "msgstr", "")
		ew.line("")
	}
	return ew.flush()
}

// writeHeader writes the header entry. PO editors need the charset
// declaration to read non ASCII characters correctly.
func (c *Codec) writeHeader(ew *errWriter, potDate string) {
	now := c.now().Format(DateLayout)
	ew.line(`msgid ""`)
	ew.line(`msgstr ""`)
	ew.line(`"Project-Id-Version: \n"`)
	if strings.TrimSpace(potDate) == "" {
		ew.line(fmt.Sprintf(`"POT-Creation-Date: %s\n"`, now))
	} else {
		ew.line(potDate)
		ew.line(fmt.Sprintf(`"PO-Revision-Date: %s\n"`, now))
	}
	ew.line(`"MIME-Version: 1.0\n"`)
	ew.line(`"Content-Type: text/plain; charset=utf-8\n"`)
	ew.line(`"Content-Transfer-Encoding: 8bit\n"`)
	ew.line(fmt.Sprintf(`"X-Generator: %s\n"`, Generator))
	ew.line("")
}

func (c *Codec) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// writeReferences writes one '#:' line per distinct reference
func writeReferences(ew *errWriter, refs []i18n.ReferenceContext) {
	seen := make(map[i18n.ReferenceContext]bool, len(refs))
	for _, ref := range refs {
		if seen[ref] {
			continue
		}
		seen[ref] = true
		ew.line("#: " + ref.String())
	}
}

// writeString writes a msgctxt, msgid or msgstr keyword with its value.
//
//	IN : a<LF>b
//	OUT: msgid ""
//	     "a\n"
//	     "b"
//
// Every line is prefixed with '#~ ' if orphan is set.
func writeString(ew *errWriter, orphan bool, keyword, value string) {
	value = strings.Replace(value, "\r\n", "\n", -1)
	var s string
	if strings.Contains(value, "\n") {
		s = fmt.Sprintf("%s \"\"\n\"%s\"", keyword, strings.Replace(value, "\n", "\\n\"\n\"", -1))
	} else {
		s = fmt.Sprintf("%s \"%s\"", keyword, value)
	}
	if orphan {
		s = obsoletePrefix + " " + strings.Replace(s, "\n", "\n"+obsoletePrefix+" ", -1)
	}
	ew.line(s)
}

// errWriter writes lines until the first error
type errWriter struct {
	w   *bufio.Writer
	err error
}

func (ew *errWriter) line(s string) {
	if ew.err != nil {
		return
	}
	if _, ew.err = ew.w.WriteString(s); ew.err != nil {
		return
	}
	ew.err = ew.w.WriteByte('\n')
}

func (ew *errWriter) flush() error {
	if ew.err != nil {
		return ew.err
	}
	return ew.w.Flush()
}
