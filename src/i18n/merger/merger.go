// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package merger merges freshly extracted messages into the stored
// translations, without losing what translators wrote.
package merger

import (
	"sort"

	"github.com/hexya-erp/postore/src/config"
	"github.com/hexya-erp/postore/src/i18n"
	"github.com/hexya-erp/postore/src/tools/logging"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var log = logging.GetLogger("merger")

// A Repository loads and saves translations.
// store.Repository is the PO file implementation.
type Repository interface {
	// GetTranslation loads the translation of lang. fileNames are the
	// per-file translation files to read when loadingCache is false.
	GetTranslation(lang string, fileNames []string, loadingCache bool) (*i18n.Translation, error)
	// SaveTranslation persists t to the given per-file translation files
	// and to the primary file of its language.
	SaveTranslation(t *i18n.Translation, fileNames []string) error
	// AvailableLanguages returns the languages to merge into
	AvailableLanguages() ([]i18n.Language, error)
}

// A Merger updates translations from a template inventory
type Merger struct {
	repo     Repository
	settings config.Settings
	// OnMerged is called after each language of MergeAll is saved.
	// It may be called concurrently.
	OnMerged func(lang i18n.Language)
}

// New returns a Merger saving to repo
func New(repo Repository, settings config.Settings) *Merger {
	return &Merger{
		repo:     repo,
		settings: settings,
	}
}

// Merge updates dst with the items of src and saves it.
//
// Items of dst that are not in src become orphans. Items of src that are
// not in dst are added with an empty translation. Other items get the
// msgid, references and extracted comments of src, and keep their
// translation, translator comments and flags.
func (m *Merger) Merge(src map[string]*i18n.TemplateItem, dst *i18n.Translation) error {
	for _, item := range dst.Items {
		item.References = nil
	}

	var fileNames []string
	seenFiles := make(map[string]bool)
	for _, key := range sortedKeys(src) {
		srcItem := src[key]
		dstItem := dst.GetOrAdd(key)
		dstItem.MsgID = srcItem.MsgID
		dstItem.References = append([]i18n.ReferenceContext(nil), srcItem.References...)
		dstItem.ExtractedComments = i18n.NewStringSet(srcItem.Comments...)
		if m.settings.GenerateTemplatePerFile {
			if !seenFiles[srcItem.FileName] {
				seenFiles[srcItem.FileName] = true
				fileNames = append(fileNames, srcItem.FileName)
			}
			dstItem.FileName = srcItem.FileName
		}
	}

	if err := m.repo.SaveTranslation(dst, fileNames); err != nil {
		return errors.Wrapf(err, "unable to save %s translation", dst.Language.Tag)
	}
	return nil
}

// MergeAll merges src into the translation of every available language.
//
// Languages are merged concurrently, at most MergeConcurrency at a time.
// MergeAll returns the first error met, after all started merges ended.
func (m *Merger) MergeAll(src map[string]*i18n.TemplateItem) error {
	langs, err := m.repo.AvailableLanguages()
	if err != nil {
		return errors.Wrap(err, "unable to list languages")
	}
	fileNames := i18n.FileNames(src)

	var g errgroup.Group
	if m.settings.MergeConcurrency > 0 {
		g.SetLimit(m.settings.MergeConcurrency)
	}
	for _, lang := range langs {
		lang := lang
		g.Go(func() error {
			dst, err := m.repo.GetTranslation(lang.Tag, fileNames, false)
			if err != nil {
				return errors.Wrapf(err, "unable to load %s translation", lang.Tag)
			}
			if err := m.Merge(src, dst); err != nil {
				return err
			}
			log.Info("Translation merged", "lang", lang.Tag, "messages", len(dst.Items))
			if m.OnMerged != nil {
				m.OnMerged(lang)
			}
			return nil
		})
	}
	return g.Wait()
}

func sortedKeys(src map[string]*i18n.TemplateItem) []string {
	keys := make([]string, 0, len(src))
	for key := range src {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
