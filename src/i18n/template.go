// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package i18n

import (
	"sort"
)

// A TemplateItem is a translatable string found in the source code.
// It never carries a translation.
type TemplateItem struct {
	MsgKey     string
	MsgID      string
	Comments   []string
	References []ReferenceContext
	FileName   string
}

// IsOrphan returns true if this item has no source reference
func (ti *TemplateItem) IsOrphan() bool {
	return len(ti.References) == 0
}

// SortTemplateItems sorts items the same way as SortItems
func SortTemplateItems(items []*TemplateItem) {
	sort.Slice(items, func(i, j int) bool {
		return lessByOrphanThenKey(items[i].IsOrphan(), items[j].IsOrphan(), items[i].MsgKey, items[j].MsgKey)
	})
}

// TemplateItems converts the items of a translation read from a template
// file back into template items. Extracted comments become the comments.
func TemplateItems(t *Translation, fileName string) map[string]*TemplateItem {
	res := make(map[string]*TemplateItem, len(t.Items))
	for key, item := range t.Items {
		res[key] = &TemplateItem{
			MsgKey:     item.MsgKey,
			MsgID:      item.MsgID,
			Comments:   item.ExtractedComments.Values(),
			References: append([]ReferenceContext(nil), item.References...),
			FileName:   fileName,
		}
	}
	return res
}

// FileNames returns the distinct file names of the given items, sorted.
func FileNames(items map[string]*TemplateItem) []string {
	seen := make(map[string]bool)
	var res []string
	for _, item := range items {
		if seen[item.FileName] {
			continue
		}
		seen[item.FileName] = true
		res = append(res, item.FileName)
	}
	sort.Strings(res)
	return res
}
