// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package catalog serves translated messages from the translation store.
//
// Translations are loaded lazily per language and kept in memory until the
// watch target of the language changes on disk.
package catalog

import (
	"sync"

	"github.com/hexya-erp/postore/src/i18n"
	"github.com/hexya-erp/postore/src/tools/logging"
)

var log = logging.GetLogger("catalog")

// A Source loads translations and tells when they are outdated.
// store.Repository is a Source.
type Source interface {
	GetTranslation(lang string, fileNames []string, loadingCache bool) (*i18n.Translation, error)
	WatchTarget(lang string) (path string, ok bool)
	Stamp(path string) int64
}

// A Catalog holds the translations of all the languages requested so far
type Catalog struct {
	src   Source
	mu    sync.RWMutex
	langs map[string]*cached
}

type cached struct {
	translation *i18n.Translation
	target      string
	stamp       int64
}

// New returns an empty Catalog loading translations from src
func New(src Source) *Catalog {
	return &Catalog{
		src:   src,
		langs: make(map[string]*cached),
	}
}

// Translate returns the translation of msgID in the given context for
// lang. If no translation is found, if it is the empty string or if the
// message is an orphan, msgID is returned.
func (c *Catalog) Translate(lang, msgCtxt, msgID string) string {
	t := c.Translation(lang)
	if t == nil {
		return msgID
	}
	item := t.Get(i18n.MakeKey(msgID, msgCtxt))
	if item == nil || item.IsOrphan() || item.Message == "" {
		return msgID
	}
	return item.Message
}

// Translation returns the translation of lang, loading it if it is not
// cached or if its watch target changed since it was loaded. It returns
// nil if the translation cannot be loaded.
func (c *Catalog) Translation(lang string) *i18n.Translation {
	c.mu.RLock()
	entry, ok := c.langs[lang]
	c.mu.RUnlock()
	if ok && !c.outdated(lang, entry) {
		return entry.translation
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.langs[lang]; ok && !c.outdated(lang, entry) {
		return entry.translation
	}
	t, err := c.src.GetTranslation(lang, nil, true)
	if err != nil {
		log.Warn("Unable to load translation", "lang", lang, "error", err)
		return nil
	}
	target, _ := c.src.WatchTarget(lang)
	entry = &cached{translation: t, target: target}
	if target != "" {
		entry.stamp = c.src.Stamp(target)
	}
	c.langs[lang] = entry
	log.Debug("Translation loaded", "lang", lang, "messages", len(t.Items))
	return t
}

// outdated returns true if the watch target of lang is not the one the
// cached entry was loaded from, or if it changed since.
func (c *Catalog) outdated(lang string, entry *cached) bool {
	target, _ := c.src.WatchTarget(lang)
	if target != entry.target {
		return true
	}
	return target != "" && c.src.Stamp(target) != entry.stamp
}

// Invalidate drops the cached translation of lang
func (c *Catalog) Invalidate(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.langs, lang)
}

// InvalidateAll drops all cached translations
func (c *Catalog) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.langs = make(map[string]*cached)
}

// Languages returns the tags of the cached languages
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res := make([]string, 0, len(c.langs))
	for lang := range c.langs {
		res = append(res, lang)
	}
	return res
}
