// Copyright 2020 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package fileutils_test

import (
	"testing"

	"github.com/hexya-erp/postore/src/tools/fileutils"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestCopy(t *testing.T) {
	Convey("Testing Copy", t, func() {
		fs := afero.NewMemMapFs()
		err := afero.WriteFile(fs, "/data/fileutils-input", []byte("This is the file's content"), 0644)
		So(err, ShouldBeNil)
		err = fileutils.Copy(fs, "/data/fileutils-input", "/data/fileutils-output")
		So(err, ShouldBeNil)
		fs1, err := fs.Stat("/data/fileutils-input")
		So(err, ShouldBeNil)
		fd, err := fs.Stat("/data/fileutils-output")
		So(err, ShouldBeNil)
		So(fd.Size(), ShouldEqual, fs1.Size())
		data, err := afero.ReadFile(fs, "/data/fileutils-output")
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, "This is the file's content")
	})
}

func TestCreateIfNotExists(t *testing.T) {
	Convey("Testing CreateIfNotExists", t, func() {
		fs := afero.NewMemMapFs()
		Convey("Missing directories and file should be created empty", func() {
			So(fileutils.CreateIfNotExists(fs, "/locale/fr/messages.po"), ShouldBeNil)
			data, err := afero.ReadFile(fs, "/locale/fr/messages.po")
			So(err, ShouldBeNil)
			So(data, ShouldBeEmpty)
		})
		Convey("An existing file should be left untouched", func() {
			So(afero.WriteFile(fs, "/locale/fr/messages.po", []byte("content"), 0644), ShouldBeNil)
			So(fileutils.CreateIfNotExists(fs, "/locale/fr/messages.po"), ShouldBeNil)
			data, _ := afero.ReadFile(fs, "/locale/fr/messages.po")
			So(string(data), ShouldEqual, "content")
		})
	})
}

func TestReadLines(t *testing.T) {
	Convey("Testing ReadLines", t, func() {
		fs := afero.NewMemMapFs()
		Convey("A missing file has no lines", func() {
			lines, err := fileutils.ReadLines(fs, "/nothing.po")
			So(err, ShouldBeNil)
			So(lines, ShouldBeEmpty)
		})
		Convey("CRLF terminators should be removed", func() {
			afero.WriteFile(fs, "/crlf.po", []byte("line1\r\nline2\r\n"), 0644)
			lines, err := fileutils.ReadLines(fs, "/crlf.po")
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{"line1", "line2"})
		})
	})
}
