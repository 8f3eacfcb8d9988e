// Copyright 2020 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package fileutils holds file helpers working on an afero filesystem,
// so that callers can swap the OS for an in-memory filesystem in tests.
package fileutils

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Copy src file to dst file in the given filesystem.
func Copy(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fs.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	if err != nil {
		return err
	}
	return out.Close()
}

// CreateIfNotExists creates an empty file at path, and all its missing
// parent directories, unless the file already exists.
func CreateIfNotExists(fs afero.Fs, path string) error {
	exists, err := afero.Exists(fs, path)
	if err != nil || exists {
		return err
	}
	if err = fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// ReadLines returns the lines of the given file, without line terminators.
// A missing file yields no lines and no error.
func ReadLines(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
