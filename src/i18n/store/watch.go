// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package store

import (
	"github.com/spf13/afero"
)

// WatchTarget returns the path to watch to know when the cached
// translation of lang is outdated. ok is false if the primary file of
// lang does not exist.
func (r *Repository) WatchTarget(lang string) (path string, ok bool) {
	path = r.LanguagePath(lang, "")
	exists, err := afero.Exists(r.fs, path)
	if err != nil || !exists {
		return "", false
	}
	return path, true
}

// WatchAll returns the directory to watch to know when any cached
// translation is outdated.
func (r *Repository) WatchAll() string {
	return r.settings.LocaleDirectory
}

// Stamp returns the modification time of path in nanoseconds, or 0 if it
// does not exist. Caches compare stamps of watch targets to find out
// whether they changed.
func (r *Repository) Stamp(path string) int64 {
	info, err := r.fs.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().UnixNano()
}
