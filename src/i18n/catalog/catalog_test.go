// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package catalog

import (
	"testing"
	"time"

	"github.com/hexya-erp/postore/src/config"
	"github.com/hexya-erp/postore/src/i18n/store"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

const frPO = `#: home.html:1
msgid "Hello"
msgstr "Bonjour"

#. menu
#: menu.html:1
msgctxt "menu"
msgid "Open"
msgstr "Ouvrir"

#: home.html:2
msgid "Untranslated"
msgstr ""

#~ msgid "Old"
#~ msgstr "Vieux"
`

func TestCatalog(t *testing.T) {
	Convey("Testing the translation catalog", t, func() {
		fs := afero.NewMemMapFs()
		s := config.Default()
		s.LocaleDirectory = "/locale"
		path := "/locale/fr/messages.po"
		So(afero.WriteFile(fs, path, []byte(frPO), 0644), ShouldBeNil)
		c := New(store.New(fs, s, nil))

		Convey("Messages should be translated", func() {
			So(c.Translate("fr", "", "Hello"), ShouldEqual, "Bonjour")
			So(c.Translate("fr", "menu", "Open"), ShouldEqual, "Ouvrir")
			So(c.Languages(), ShouldResemble, []string{"fr"})
		})
		Convey("Unknown, empty and orphan messages should fall back to msgid", func() {
			So(c.Translate("fr", "", "Open"), ShouldEqual, "Open")
			So(c.Translate("fr", "", "Missing"), ShouldEqual, "Missing")
			So(c.Translate("fr", "", "Untranslated"), ShouldEqual, "Untranslated")
			So(c.Translate("fr", "", "Old"), ShouldEqual, "Old")
			So(c.Translate("de", "", "Hello"), ShouldEqual, "Hello")
		})
		Convey("A changed file should be reloaded", func() {
			So(c.Translate("fr", "", "Hello"), ShouldEqual, "Bonjour")
			So(afero.WriteFile(fs, path, []byte("#: home.html:1\nmsgid \"Hello\"\nmsgstr \"Salut\"\n"), 0644), ShouldBeNil)
			So(fs.Chtimes(path, time.Now(), time.Now().Add(time.Hour)), ShouldBeNil)
			So(c.Translate("fr", "", "Hello"), ShouldEqual, "Salut")
		})
		Convey("A file created after loading should be read", func() {
			So(c.Translate("de", "", "Hello"), ShouldEqual, "Hello")
			So(afero.WriteFile(fs, "/locale/de/messages.po", []byte("#: home.html:1\nmsgid \"Hello\"\nmsgstr \"Hallo\"\n"), 0644), ShouldBeNil)
			So(c.Translate("de", "", "Hello"), ShouldEqual, "Hallo")
		})
		Convey("Invalidated languages should be reloaded", func() {
			So(c.Translate("fr", "", "Hello"), ShouldEqual, "Bonjour")
			c.Invalidate("fr")
			So(c.Languages(), ShouldBeEmpty)
			So(c.Translate("fr", "", "Hello"), ShouldEqual, "Bonjour")
			c.InvalidateAll()
			So(c.Languages(), ShouldBeEmpty)
		})
	})
}
