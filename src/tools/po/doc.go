// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

/*
Package po reads and writes GNU PO and POT files.

Reading fills an i18n.Translation, writing renders translation or template
items with the layout PO editors such as Poedit expect: a fixed header,
referenced entries sorted by key, then historical entries ('#~') sorted by
key.

Examples:
	import (
		"log"
		"os"

		"github.com/hexya-erp/postore/src/i18n"
		"github.com/hexya-erp/postore/src/tools/po"
	)

	func main() {
		codec := po.NewCodec(false)
		trans := i18n.NewTranslation("fr")
		f, _ := os.Open("locale/fr/messages.po")
		defer f.Close()
		if err := codec.Parse(trans, f, ""); err != nil {
			log.Fatal(err)
		}
		codec.WriteTranslation(os.Stdout, trans.Sorted(), "")
	}

Only singular messages are supported. The GNU PO file format is documented at
http://www.gnu.org/software/gettext/manual/html_node/PO-Files.html.
*/
package po
