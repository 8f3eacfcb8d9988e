// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package i18n holds the in-memory model of translations and templates.
package i18n

import (
	"sort"
)

// ContextSeparator separates the message context from the msgid in the key
// of a contextual message. It is the separator gettext itself uses in
// compiled catalogs, and may appear in neither msgid nor msgctxt.
const ContextSeparator = "\x04"

// MakeKey returns the message key of a message with the given msgid and
// context. The key is the msgid when there is no context.
func MakeKey(msgID, msgCtxt string) string {
	if msgCtxt == "" {
		return msgID
	}
	return msgCtxt + ContextSeparator + msgID
}

// KeyFromMsgidAndComment returns the key of a scanned message whose first
// extracted comment is comment. The comment is used as context only if
// contextEnabled is set, which mirrors how the encoder writes msgctxt.
func KeyFromMsgidAndComment(msgID, comment string, contextEnabled bool) string {
	if !contextEnabled {
		return msgID
	}
	return MakeKey(msgID, comment)
}

// A TranslationItem is a message of a Translation
type TranslationItem struct {
	MsgKey             string
	MsgID              string
	Message            string
	TranslatorComments StringSet
	ExtractedComments  StringSet
	Flags              StringSet
	References         []ReferenceContext
	FileName           string
}

// IsOrphan returns true if this item is not referenced in the source code
// anymore. Orphans are written as historical entries.
func (ti *TranslationItem) IsOrphan() bool {
	return len(ti.References) == 0
}

// HasReference returns true if ref is already one of this item's references.
func (ti *TranslationItem) HasReference(ref ReferenceContext) bool {
	for _, r := range ti.References {
		if r == ref {
			return true
		}
	}
	return false
}

// union merges other, a later occurrence of the same key, into ti.
//
// New references are added to the references and their textual form is
// also added to the extracted comments, translator comments and flags.
// Existing PO files depend on this, so it must not be changed.
func (ti *TranslationItem) union(other *TranslationItem) {
	for _, ref := range other.References {
		if !ti.HasReference(ref) {
			ti.References = append(ti.References, ref)
		}
		comment := ref.String()
		ti.ExtractedComments.Add(comment)
		ti.TranslatorComments.Add(comment)
		ti.Flags.Add(comment)
	}
}

// A Translation holds all the messages of a language
type Translation struct {
	Language Language
	Items    map[string]*TranslationItem
}

// NewTranslation returns a new empty Translation for the given language tag
func NewTranslation(langTag string) *Translation {
	return &Translation{
		Language: Language{Tag: langTag},
		Items:    make(map[string]*TranslationItem),
	}
}

// Get returns the item with the given key, or nil.
func (t *Translation) Get(key string) *TranslationItem {
	return t.Items[key]
}

// GetOrAdd returns the item with the given key, creating an empty one if
// it does not exist yet.
func (t *Translation) GetOrAdd(key string) *TranslationItem {
	item, ok := t.Items[key]
	if !ok {
		item = &TranslationItem{MsgKey: key}
		t.Items[key] = item
	}
	return item
}

// AddOrUnion adds item to the translation. If an item with the same key
// already exists, item is merged into it instead and the existing item is
// kept.
func (t *Translation) AddOrUnion(item *TranslationItem) *TranslationItem {
	existing, ok := t.Items[item.MsgKey]
	if !ok {
		t.Items[item.MsgKey] = item
		return item
	}
	existing.union(item)
	return existing
}

// Sorted returns the items of this translation in file order
func (t *Translation) Sorted() []*TranslationItem {
	items := make([]*TranslationItem, 0, len(t.Items))
	for _, item := range t.Items {
		items = append(items, item)
	}
	SortItems(items)
	return items
}

// SortItems sorts items with referenced items first and orphans last,
// each group by ascending key.
func SortItems(items []*TranslationItem) {
	sort.Slice(items, func(i, j int) bool {
		return lessByOrphanThenKey(items[i].IsOrphan(), items[j].IsOrphan(), items[i].MsgKey, items[j].MsgKey)
	})
}

func lessByOrphanThenKey(orphanI, orphanJ bool, keyI, keyJ string) bool {
	if orphanI != orphanJ {
		return orphanJ
	}
	return keyI < keyJ
}
