// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package fileutils_test

import (
	"testing"

	"github.com/hexya-erp/postore/src/tools/fileutils"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

const (
	oldContent = "header 1\nheader 2 old\nbody 1\nbody 2\n"
	sameBody   = "header 1\nheader 2 new\nbody 1\nbody 2\n"
	newBody    = "header 1\nheader 2 new\nbody 1\nbody 3\n"
	longerBody = "header 1\nheader 2 new\nbody 1\nbody 2\nbody 3\n"
)

func TestAtomicWriter(t *testing.T) {
	Convey("Testing AtomicWriter.Replace", t, func() {
		fs := afero.NewMemMapFs()
		w := fileutils.NewAtomicWriter(fs)
		path := "/locale/fr/messages.po"
		Convey("Writing a new file should create directories, file and an empty backup", func() {
			changed, err := w.Replace(path, []byte(oldContent), 2)
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)
			data, _ := afero.ReadFile(fs, path)
			So(string(data), ShouldEqual, oldContent)
			backup, err := afero.ReadFile(fs, path+fileutils.BackupSuffix)
			So(err, ShouldBeNil)
			So(backup, ShouldBeEmpty)
			exists, _ := afero.Exists(fs, path+fileutils.TempSuffix)
			So(exists, ShouldBeFalse)
		})
		Convey("Given an existing file", func() {
			So(afero.WriteFile(fs, path, []byte(oldContent), 0644), ShouldBeNil)
			Convey("Same body with a different header should be a no-op", func() {
				changed, err := w.Replace(path, []byte(sameBody), 2)
				So(err, ShouldBeNil)
				So(changed, ShouldBeFalse)
				data, _ := afero.ReadFile(fs, path)
				So(string(data), ShouldEqual, oldContent)
				exists, _ := afero.Exists(fs, path+fileutils.BackupSuffix)
				So(exists, ShouldBeFalse)
				exists, _ = afero.Exists(fs, path+fileutils.TempSuffix)
				So(exists, ShouldBeFalse)
			})
			Convey("A different body should replace the file and back up the old one", func() {
				changed, err := w.Replace(path, []byte(newBody), 2)
				So(err, ShouldBeNil)
				So(changed, ShouldBeTrue)
				data, _ := afero.ReadFile(fs, path)
				So(string(data), ShouldEqual, newBody)
				backup, _ := afero.ReadFile(fs, path+fileutils.BackupSuffix)
				So(string(backup), ShouldEqual, oldContent)
				exists, _ := afero.Exists(fs, path+fileutils.TempSuffix)
				So(exists, ShouldBeFalse)
			})
			Convey("Appended lines should count as a change", func() {
				changed, err := w.Replace(path, []byte(longerBody), 2)
				So(err, ShouldBeNil)
				So(changed, ShouldBeTrue)
			})
			Convey("Only one backup generation should be kept", func() {
				_, err := w.Replace(path, []byte(newBody), 2)
				So(err, ShouldBeNil)
				_, err = w.Replace(path, []byte(longerBody), 2)
				So(err, ShouldBeNil)
				backup, _ := afero.ReadFile(fs, path+fileutils.BackupSuffix)
				So(string(backup), ShouldEqual, newBody)
				data, _ := afero.ReadFile(fs, path)
				So(string(data), ShouldEqual, longerBody)
			})
		})
		Convey("A failing write should leave the destination untouched", func() {
			So(afero.WriteFile(fs, path, []byte(oldContent), 0644), ShouldBeNil)
			ro := fileutils.NewAtomicWriter(afero.NewReadOnlyFs(fs))
			_, err := ro.Replace(path, []byte(newBody), 2)
			So(err, ShouldNotBeNil)
			data, _ := afero.ReadFile(fs, path)
			So(string(data), ShouldEqual, oldContent)
		})
	})
}

func TestSameContent(t *testing.T) {
	Convey("Testing SameContent", t, func() {
		fs := afero.NewMemMapFs()
		afero.WriteFile(fs, "/a", []byte("h\nx\n"), 0644)
		afero.WriteFile(fs, "/b", []byte("g\nx\n"), 0644)
		afero.WriteFile(fs, "/c", []byte("h\n"), 0644)
		same, err := fileutils.SameContent(fs, "/a", "/b", 1)
		So(err, ShouldBeNil)
		So(same, ShouldBeTrue)
		same, _ = fileutils.SameContent(fs, "/a", "/b", 0)
		So(same, ShouldBeFalse)
		same, _ = fileutils.SameContent(fs, "/c", "/c", 1)
		So(same, ShouldBeFalse)
		same, _ = fileutils.SameContent(fs, "/a", "/missing", 1)
		So(same, ShouldBeFalse)
	})
}
