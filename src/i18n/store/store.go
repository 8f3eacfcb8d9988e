// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package store persists translations as PO files.
//
// Files are laid out as follows, relative to the locale directory:
//
//	<lang>/<filename>.po   one or more translation files per language
//	<filename>.pot         template files
//
// Every file is written through a fileutils.AtomicWriter, which keeps a
// single '.backup' generation next to it.
package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/hexya-erp/postore/src/config"
	"github.com/hexya-erp/postore/src/i18n"
	"github.com/hexya-erp/postore/src/tools/fileutils"
	"github.com/hexya-erp/postore/src/tools/logging"
	"github.com/hexya-erp/postore/src/tools/po"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	// TranslationExt is the extension of translation files
	TranslationExt = ".po"
	// TemplateExt is the extension of template files
	TemplateExt = ".pot"
	// SkipTranslationHeader is the number of header lines of a
	// translation file that are ignored when comparing contents.
	SkipTranslationHeader = 5
	// SkipTemplateHeader is the number of header lines of a template
	// file that are ignored when comparing contents.
	SkipTemplateHeader = 4
	// templateDateLine is the index of the POT-Creation-Date line
	// in a template file.
	templateDateLine = 3
)

var log = logging.GetLogger("store")

// A Repository reads and writes the PO files of a locale directory.
//
// A Repository holds no mutable state and can be used concurrently for
// different languages.
type Repository struct {
	fs       afero.Fs
	settings config.Settings
	codec    *po.Codec
	writer   *fileutils.AtomicWriter
	resolver i18n.CultureResolver
}

// New returns a Repository working on fs with the given settings.
// A nil fs means the OS filesystem and a nil resolver means
// i18n.TextResolver.
func New(fs afero.Fs, settings config.Settings, resolver i18n.CultureResolver) *Repository {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if resolver == nil {
		resolver = i18n.TextResolver{}
	}
	return &Repository{
		fs:       fs,
		settings: settings,
		codec:    po.NewCodec(settings.MessageContextEnabledFromComment),
		writer:   fileutils.NewAtomicWriter(fs),
		resolver: resolver,
	}
}

// Settings returns the settings of this repository
func (r *Repository) Settings() config.Settings {
	return r.settings
}

// LanguagePath returns the path of the translation file of lang with the
// given base name. An empty fileName means the primary file.
func (r *Repository) LanguagePath(lang, fileName string) string {
	return filepath.Join(r.settings.LocaleDirectory, lang, r.baseName(fileName)+TranslationExt)
}

// TemplatePath returns the path of the template file with the given base
// name. An empty fileName means the primary template.
func (r *Repository) TemplatePath(fileName string) string {
	return filepath.Join(r.settings.LocaleDirectory, r.baseName(fileName)+TemplateExt)
}

func (r *Repository) baseName(fileName string) string {
	if strings.TrimSpace(fileName) == "" {
		return r.settings.LocaleFilename
	}
	return fileName
}

// GetTranslation loads the translation of lang.
//
// The primary file is read first, unless per-file templates are enabled
// and loadingCache is false. Then the LocaleOtherFiles are read and, when
// per-file templates are enabled and loadingCache is false, the files of
// the given fileNames. Missing files are skipped, so that an unknown
// language gives an empty translation.
func (r *Repository) GetTranslation(lang string, fileNames []string, loadingCache bool) (*i18n.Translation, error) {
	t := i18n.NewTranslation(lang)
	t.Language = r.language(lang)

	type source struct {
		path  string
		owner string
	}
	var sources []source
	perFile := r.settings.GenerateTemplatePerFile && !loadingCache
	if !perFile {
		sources = append(sources, source{path: r.LanguagePath(lang, "")})
	}
	for _, other := range r.settings.LocaleOtherFiles {
		sources = append(sources, source{path: r.LanguagePath(lang, other)})
	}
	if perFile {
		for _, fileName := range fileNames {
			sources = append(sources, source{path: r.LanguagePath(lang, fileName), owner: fileName})
		}
	}

	for _, src := range sources {
		if err := r.parseFile(t, src.path, src.owner); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// parseFile parses the file at path into t, if it exists
func (r *Repository) parseFile(t *i18n.Translation, path, owner string) error {
	f, err := r.fs.Open(path)
	if os.IsNotExist(err) {
		log.Debug("Skipping missing file", "file", path)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()
	log.Debug("Reading file", "file", path)
	if err := r.codec.Parse(t, f, owner); err != nil {
		return errors.Wrapf(err, "unable to parse %s", path)
	}
	return nil
}

// SaveTranslation writes t to the files of the given fileNames and to the
// primary file of its language.
//
// The primary file holds all the items of t. When per-file templates are
// enabled, the other files only hold the items whose FileName matches.
// Files whose content did not change are left untouched.
func (r *Repository) SaveTranslation(t *i18n.Translation, fileNames []string) error {
	lang := t.Language.Tag
	items := t.Sorted()
	for _, fileName := range r.saveOrder(fileNames) {
		fileItems := items
		if r.settings.GenerateTemplatePerFile && fileName != r.settings.LocaleFilename {
			fileItems = itemsOfFile(items, fileName)
		}
		var buf bytes.Buffer
		if err := r.codec.WriteTranslation(&buf, fileItems, r.templateDate(fileName)); err != nil {
			return errors.Wrapf(err, "unable to render %s translation %s", lang, fileName)
		}
		path := r.LanguagePath(lang, fileName)
		changed, err := r.writer.Replace(path, buf.Bytes(), SkipTranslationHeader)
		if err != nil {
			return err
		}
		log.Debug("Translation saved", "lang", lang, "file", path, "changed", changed)
	}
	return nil
}

// saveOrder returns the distinct base names of fileNames followed by the
// primary file name.
func (r *Repository) saveOrder(fileNames []string) []string {
	seen := map[string]bool{r.settings.LocaleFilename: true}
	var res []string
	for _, fileName := range fileNames {
		name := r.baseName(fileName)
		if seen[name] {
			continue
		}
		seen[name] = true
		res = append(res, name)
	}
	return append(res, r.settings.LocaleFilename)
}

func itemsOfFile(items []*i18n.TranslationItem, fileName string) []*i18n.TranslationItem {
	var res []*i18n.TranslationItem
	for _, item := range items {
		if item.FileName == fileName {
			res = append(res, item)
		}
	}
	return res
}

// templateDate returns the POT-Creation-Date line of the template with
// the given base name, or "" if there is no such template.
func (r *Repository) templateDate(fileName string) string {
	lines, err := fileutils.ReadLines(r.fs, r.TemplatePath(fileName))
	if err != nil || len(lines) <= templateDateLine {
		return ""
	}
	line := lines[templateDateLine]
	if !strings.Contains(line, "POT-Creation-Date:") {
		return ""
	}
	return line
}

// SaveTemplate writes the given items to the template file, or to one
// template file per FileName when per-file templates are enabled.
// It returns true if at least one file changed.
func (r *Repository) SaveTemplate(items map[string]*i18n.TemplateItem) (bool, error) {
	groups := map[string][]*i18n.TemplateItem{"": nil}
	if r.settings.GenerateTemplatePerFile {
		groups = make(map[string][]*i18n.TemplateItem)
	}
	for _, item := range items {
		group := ""
		if r.settings.GenerateTemplatePerFile {
			group = r.baseName(item.FileName)
		}
		groups[group] = append(groups[group], item)
	}

	var changed bool
	for fileName, groupItems := range groups {
		var buf bytes.Buffer
		if err := r.codec.WriteTemplate(&buf, groupItems); err != nil {
			return changed, errors.Wrapf(err, "unable to render template %s", fileName)
		}
		path := r.TemplatePath(fileName)
		fileChanged, err := r.writer.Replace(path, buf.Bytes(), SkipTemplateHeader)
		if err != nil {
			return changed, err
		}
		log.Debug("Template saved", "file", path, "changed", fileChanged)
		changed = changed || fileChanged
	}
	return changed, nil
}

// GetTemplate reads the template files back into an inventory.
//
// When per-file templates are enabled every '.pot' file of the locale
// directory is read and its items get the file's base name as FileName,
// except for the primary template. Otherwise only the primary template
// is read.
func (r *Repository) GetTemplate() (map[string]*i18n.TemplateItem, error) {
	paths := []string{r.TemplatePath("")}
	if r.settings.GenerateTemplatePerFile {
		var err error
		paths, err = afero.Glob(r.fs, filepath.Join(r.settings.LocaleDirectory, "*"+TemplateExt))
		if err != nil {
			return nil, errors.Wrap(err, "unable to list template files")
		}
	}
	res := make(map[string]*i18n.TemplateItem)
	for _, path := range paths {
		fileName := strings.TrimSuffix(filepath.Base(path), TemplateExt)
		if fileName == r.settings.LocaleFilename {
			fileName = ""
		}
		items, err := r.ReadTemplateFile(path, fileName)
		if err != nil {
			return nil, err
		}
		for key, item := range items {
			if _, exists := res[key]; !exists {
				res[key] = item
			}
		}
	}
	return res, nil
}

// ReadTemplateFile reads the template file at path into an inventory
// whose items have the given fileName. A missing file gives an empty
// inventory.
func (r *Repository) ReadTemplateFile(path, fileName string) (map[string]*i18n.TemplateItem, error) {
	t := i18n.NewTranslation("")
	if err := r.parseFile(t, path, fileName); err != nil {
		return nil, err
	}
	return i18n.TemplateItems(t, fileName), nil
}

// AvailableLanguages returns the languages of this repository.
//
// These are the configured AvailableLanguages if any. Otherwise, these are
// the sub-directories of the locale directory whose name is accepted by
// the culture resolver. Other directories are silently ignored.
func (r *Repository) AvailableLanguages() ([]i18n.Language, error) {
	if len(r.settings.AvailableLanguages) > 0 {
		res := make([]i18n.Language, len(r.settings.AvailableLanguages))
		for i, tag := range r.settings.AvailableLanguages {
			res[i] = r.language(tag)
		}
		return res, nil
	}

	entries, err := afero.ReadDir(r.fs, r.settings.LocaleDirectory)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to list %s", r.settings.LocaleDirectory)
	}
	var res []i18n.Language
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		lang, err := i18n.ResolveLanguage(r.resolver, entry.Name())
		if err != nil {
			log.Debug("Ignoring directory", "dir", entry.Name(), "error", err)
			continue
		}
		res = append(res, lang)
	}
	return res, nil
}

// TranslationExists returns true if lang is one of the configured
// languages or, when none is configured, if its primary file exists.
func (r *Repository) TranslationExists(lang string) bool {
	if len(r.settings.AvailableLanguages) > 0 {
		for _, l := range r.settings.AvailableLanguages {
			if l == lang {
				return true
			}
		}
		return false
	}
	exists, err := afero.Exists(r.fs, r.LanguagePath(lang, ""))
	return err == nil && exists
}

// language returns a Language for tag, with its culture if the resolver
// accepts it.
func (r *Repository) language(tag string) i18n.Language {
	lang, err := i18n.ResolveLanguage(r.resolver, tag)
	if err != nil {
		return i18n.Language{Tag: tag}
	}
	return lang
}
