// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package fileutils

import (
	"github.com/hexya-erp/postore/src/tools/logging"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	// TempSuffix is appended to a destination path to get the path
	// of the file the new content is first written to.
	TempSuffix = ".temp"
	// BackupSuffix is appended to a destination path to get the path
	// of the single backup generation.
	BackupSuffix = ".backup"
)

var log = logging.GetLogger("fileutils")

// An AtomicWriter replaces files so that readers see either the previous
// full content or the new full content, and keeps one backup generation.
//
// It does not lock anything: two writers racing on the same path may
// lose one update.
type AtomicWriter struct {
	Fs afero.Fs
}

// NewAtomicWriter returns an AtomicWriter on the given filesystem.
// A nil fs means the OS filesystem.
func NewAtomicWriter(fs afero.Fs) *AtomicWriter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &AtomicWriter{Fs: fs}
}

// Replace writes content to path.
//
// The content is written to path+TempSuffix first. If it is equal to the
// current content of path once the first skip lines of both are ignored,
// the temp file is removed and Replace returns false. Otherwise the
// current file is copied to path+BackupSuffix and the temp file is renamed
// over path, and Replace returns true.
//
// Missing parent directories and a missing destination file are created
// before anything is written.
func (w *AtomicWriter) Replace(path string, content []byte, skip int) (bool, error) {
	if err := CreateIfNotExists(w.Fs, path); err != nil {
		return false, errors.Wrapf(err, "unable to create %s", path)
	}
	tempPath := path + TempSuffix
	log.Debug("Writing file", "file", tempPath)
	if err := afero.WriteFile(w.Fs, tempPath, content, 0644); err != nil {
		w.Fs.Remove(tempPath)
		return false, errors.Wrapf(err, "unable to write %s", tempPath)
	}

	same, err := SameContent(w.Fs, tempPath, path, skip)
	if err != nil {
		w.Fs.Remove(tempPath)
		return false, err
	}
	if same {
		log.Debug("File unchanged", "file", path)
		if err := w.Fs.Remove(tempPath); err != nil {
			return false, errors.Wrapf(err, "unable to remove %s", tempPath)
		}
		return false, nil
	}

	if err := w.backup(path); err != nil {
		w.Fs.Remove(tempPath)
		return false, err
	}
	if err := w.Fs.Rename(tempPath, path); err != nil {
		return false, errors.Wrapf(err, "unable to move %s to %s", tempPath, path)
	}
	log.Debug("File replaced", "file", path)
	return true, nil
}

// backup copies path to its backup path, removing any previous backup.
func (w *AtomicWriter) backup(path string) error {
	exists, err := afero.Exists(w.Fs, path)
	if err != nil || !exists {
		return err
	}
	backupPath := path + BackupSuffix
	if err := w.Fs.Remove(backupPath); err != nil {
		if exists, _ := afero.Exists(w.Fs, backupPath); exists {
			return errors.Wrapf(err, "unable to remove %s", backupPath)
		}
	}
	if err := Copy(w.Fs, path, backupPath); err != nil {
		return errors.Wrapf(err, "unable to back up %s", path)
	}
	return nil
}

// SameContent returns true if both files exist and have the same lines
// once the first skip lines of each are ignored. Two files with nothing
// left after skipping are never the same.
func SameContent(fs afero.Fs, pathOne, pathTwo string, skip int) (bool, error) {
	for _, p := range []string{pathOne, pathTwo} {
		exists, err := afero.Exists(fs, p)
		if err != nil || !exists {
			return false, err
		}
	}
	newLines, err := ReadLines(fs, pathOne)
	if err != nil {
		return false, errors.Wrapf(err, "unable to read %s", pathOne)
	}
	oldLines, err := ReadLines(fs, pathTwo)
	if err != nil {
		return false, errors.Wrapf(err, "unable to read %s", pathTwo)
	}
	newLines, oldLines = skipLines(newLines, skip), skipLines(oldLines, skip)
	if len(oldLines) == 0 || len(newLines) != len(oldLines) {
		return false, nil
	}
	for i := range newLines {
		if newLines[i] != oldLines[i] {
			return false, nil
		}
	}
	return true, nil
}

func skipLines(lines []string, skip int) []string {
	if skip >= len(lines) {
		return nil
	}
	return lines[skip:]
}
