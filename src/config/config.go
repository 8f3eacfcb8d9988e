// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package config holds the settings of the translation store.
//
// Settings are read once from viper and then passed around by value, so
// that the store and the merger never look up global state themselves.
package config

import (
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Viper keys of the store settings
const (
	KeyLocaleDirectory                  = "I18n.LocaleDirectory"
	KeyLocaleFilename                   = "I18n.LocaleFilename"
	KeyLocaleOtherFiles                 = "I18n.LocaleOtherFiles"
	KeyAvailableLanguages               = "I18n.AvailableLanguages"
	KeyGenerateTemplatePerFile          = "I18n.GenerateTemplatePerFile"
	KeyMessageContextEnabledFromComment = "I18n.MessageContextEnabledFromComment"
	KeyMergeConcurrency                 = "I18n.MergeConcurrency"
)

// Viper keys of the logging settings
const (
	KeyLogLevel  = "LogLevel"
	KeyLogFile   = "LogFile"
	KeyLogStdout = "LogStdout"
	KeyDebug     = "Debug"
)

// Default values of the settings
const (
	DefaultLocaleDirectory  = "locale"
	DefaultLocaleFilename   = "messages"
	DefaultMergeConcurrency = 4
	DefaultLogLevel         = "info"
	// DefaultLogOutput is used when neither LogStdout nor LogFile is set
	DefaultLogOutput = "stderr"
)

// Settings are the options of the translation store
type Settings struct {
	// LocaleDirectory is the root directory of PO and POT files
	LocaleDirectory string `toml:"LocaleDirectory"`
	// LocaleFilename is the base name, without extension, of the
	// primary PO file of each language and of the template.
	LocaleFilename string `toml:"LocaleFilename"`
	// LocaleOtherFiles are base names of extra PO files read after
	// the primary file of each language.
	LocaleOtherFiles []string `toml:"LocaleOtherFiles"`
	// AvailableLanguages overrides language discovery when not empty
	AvailableLanguages []string `toml:"AvailableLanguages"`
	// GenerateTemplatePerFile writes one file per source file group
	// in addition to the primary file.
	GenerateTemplatePerFile bool `toml:"GenerateTemplatePerFile"`
	// MessageContextEnabledFromComment writes the first extracted
	// comment of each message as its msgctxt.
	MessageContextEnabledFromComment bool `toml:"MessageContextEnabledFromComment"`
	// MergeConcurrency is the number of languages merged at the same time
	MergeConcurrency int `toml:"MergeConcurrency"`
}

// Default returns the default settings
func Default() Settings {
	return Settings{
		LocaleDirectory:  DefaultLocaleDirectory,
		LocaleFilename:   DefaultLocaleFilename,
		MergeConcurrency: DefaultMergeConcurrency,
	}
}

// SetDefaults registers the default settings in v
func SetDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault(KeyLocaleDirectory, def.LocaleDirectory)
	v.SetDefault(KeyLocaleFilename, def.LocaleFilename)
	v.SetDefault(KeyMergeConcurrency, def.MergeConcurrency)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

// FromViper returns the settings currently held by v.
// Missing or blank values fall back to their default.
func FromViper(v *viper.Viper) Settings {
	s := Settings{
		LocaleDirectory:                  v.GetString(KeyLocaleDirectory),
		LocaleFilename:                   v.GetString(KeyLocaleFilename),
		LocaleOtherFiles:                 cleanList(v.GetStringSlice(KeyLocaleOtherFiles)),
		AvailableLanguages:               cleanList(v.GetStringSlice(KeyAvailableLanguages)),
		GenerateTemplatePerFile:          v.GetBool(KeyGenerateTemplatePerFile),
		MessageContextEnabledFromComment: v.GetBool(KeyMessageContextEnabledFromComment),
		MergeConcurrency:                 v.GetInt(KeyMergeConcurrency),
	}
	return s.withDefaults()
}

// withDefaults returns a copy of s where zero values are replaced by defaults
func (s Settings) withDefaults() Settings {
	def := Default()
	if strings.TrimSpace(s.LocaleDirectory) == "" {
		s.LocaleDirectory = def.LocaleDirectory
	}
	if strings.TrimSpace(s.LocaleFilename) == "" {
		s.LocaleFilename = def.LocaleFilename
	}
	if s.MergeConcurrency <= 0 {
		s.MergeConcurrency = def.MergeConcurrency
	}
	return s
}

// cleanList trims the values of list and drops the empty ones.
// A list holding only an empty string is thus empty.
func cleanList(list []string) []string {
	var res []string
	for _, v := range list {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}

// file is the layout of the configuration file
type file struct {
	I18n Settings `toml:"I18n"`
}

// WriteTOML writes s to w in the configuration file format
func (s Settings) WriteTOML(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(file{I18n: s}); err != nil {
		return errors.Wrap(err, "unable to encode settings")
	}
	return nil
}

// ReadTOML reads settings written by WriteTOML from r
func ReadTOML(r io.Reader) (Settings, error) {
	var f file
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return Settings{}, errors.Wrap(err, "unable to decode settings")
	}
	f.I18n.LocaleOtherFiles = cleanList(f.I18n.LocaleOtherFiles)
	f.I18n.AvailableLanguages = cleanList(f.I18n.AvailableLanguages)
	return f.I18n.withDefaults(), nil
}
