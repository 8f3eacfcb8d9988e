// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package cmd

import (
	"fmt"
	"os"

	"github.com/hexya-erp/postore/src/config"
	"github.com/hexya-erp/postore/src/i18n"
	"github.com/hexya-erp/postore/src/i18n/catalog"
	"github.com/hexya-erp/postore/src/i18n/merger"
	"github.com/hexya-erp/postore/src/i18n/store"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language/display"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the available languages",
	Long: `List the languages of the locale directory.
These are the configured languages if any, or the sub-directories of the
locale directory that are valid language tags.`,
	RunE: runE(func(cmd *cobra.Command, args []string) {
		langs, err := repository().AvailableLanguages()
		if err != nil {
			log.Panic("Unable to list languages", "error", err)
		}
		for _, lang := range langs {
			if !lang.Resolved() {
				fmt.Println(lang.Tag)
				continue
			}
			fmt.Printf("%s\t%s\n", lang.Tag, display.Self.Name(lang.Culture))
		}
	}),
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge the template into the PO files",
	Long: `Merge the messages of the template into the PO files of every language.
Translations of existing messages are kept, new messages are added untranslated
and messages that are not in the template anymore are kept as obsolete entries.
Use --template to merge a given POT file instead of the template of the locale directory.`,
	RunE: runE(func(cmd *cobra.Command, args []string) {
		repo := repository()
		src := loadInventory(repo, viper.GetString("Merge.Template"))
		if len(src) == 0 {
			log.Warn("Template is empty, all messages will become obsolete")
		}
		langs, err := repo.AvailableLanguages()
		if err != nil {
			log.Panic("Unable to list languages", "error", err)
		}
		bar := progressbar.NewOptions(len(langs),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Merging"),
			progressbar.OptionClearOnFinish(),
		)
		m := merger.New(repo, repo.Settings())
		m.OnMerged = func(lang i18n.Language) {
			bar.Add(1)
		}
		if err := m.MergeAll(src); err != nil {
			log.Panic("Unable to merge translations", "error", err)
		}
		bar.Finish()
		fmt.Printf("%d messages merged into %d languages\n", len(src), len(langs))
	}),
}

// loadInventory returns the items of the given POT file, or of the
// template of repo if templatePath is empty.
func loadInventory(repo *store.Repository, templatePath string) map[string]*i18n.TemplateItem {
	var (
		src map[string]*i18n.TemplateItem
		err error
	)
	if templatePath != "" {
		src, err = repo.ReadTemplateFile(templatePath, "")
	} else {
		src, err = repo.GetTemplate()
	}
	if err != nil {
		log.Panic("Unable to read template", "file", templatePath, "error", err)
	}
	return src
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [lang...]",
	Short: "Rewrite PO files in canonical form",
	Long: `Read and write back the PO files of the given languages, or of all
available languages if none is given. Messages are sorted and obsolete
entries are marked. Files that are already canonical are left untouched.`,
	RunE: runE(func(cmd *cobra.Command, args []string) {
		repo := repository()
		langs := args
		if len(langs) == 0 {
			available, err := repo.AvailableLanguages()
			if err != nil {
				log.Panic("Unable to list languages", "error", err)
			}
			for _, lang := range available {
				langs = append(langs, lang.Tag)
			}
		}
		for _, lang := range langs {
			t, err := repo.GetTranslation(lang, nil, true)
			if err != nil {
				log.Panic("Unable to read translation", "lang", lang, "error", err)
			}
			if err := repo.SaveTranslation(t, nil); err != nil {
				log.Panic("Unable to write translation", "lang", lang, "error", err)
			}
			fmt.Printf("%s: %d messages\n", lang, len(t.Items))
		}
	}),
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Rewrite POT files in canonical form",
	Long:  `Read and write back the template files of the locale directory.`,
	RunE: runE(func(cmd *cobra.Command, args []string) {
		repo := repository()
		items, err := repo.GetTemplate()
		if err != nil {
			log.Panic("Unable to read template", "error", err)
		}
		changed, err := repo.SaveTemplate(items)
		if err != nil {
			log.Panic("Unable to write template", "error", err)
		}
		fmt.Printf("%d messages, changed: %t\n", len(items), changed)
	}),
}

var lookupCmd = &cobra.Command{
	Use:   "lookup lang msgid",
	Short: "Print the translation of a message",
	Long: `Print the translation of msgid in the given language.
The msgid itself is printed if the message is not translated.`,
	Args: cobra.ExactArgs(2),
	RunE: runE(func(cmd *cobra.Command, args []string) {
		msgCtxt, err := cmd.Flags().GetString("context")
		if err != nil {
			log.Panic("Unable to read context from the command line", "error", err)
		}
		c := catalog.New(repository())
		fmt.Println(c.Translate(args[0], msgCtxt, args[1]))
	}),
}

func init() {
	PostoreCmd.AddCommand(languagesCmd)

	PostoreCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().String("template", "", "POT file to merge instead of the template of the locale directory")
	viper.BindPFlag("Merge.Template", mergeCmd.Flags().Lookup("template"))
	mergeCmd.Flags().StringSliceP("languages", "l", nil, "Languages to merge into. Defaults to the available languages")
	viper.BindPFlag(config.KeyAvailableLanguages, mergeCmd.Flags().Lookup("languages"))
	mergeCmd.Flags().Int("concurrency", config.DefaultMergeConcurrency, "Number of languages merged at the same time")
	viper.BindPFlag(config.KeyMergeConcurrency, mergeCmd.Flags().Lookup("concurrency"))

	PostoreCmd.AddCommand(normalizeCmd)
	PostoreCmd.AddCommand(templateCmd)

	PostoreCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().String("context", "", "Message context (msgctxt)")
}
