// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package cmd

import (
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hexya-erp/postore/src/config"
	"github.com/hexya-erp/postore/src/i18n/store"
	"github.com/hexya-erp/postore/src/tools/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read as settings
const EnvPrefix = "POSTORE"

var log logging.Logger

// PostoreCmd is the base 'postore' command of the commander
var PostoreCmd = &cobra.Command{
	Use:   "postore",
	Short: "Postore manages gettext PO translation files",
	Long: `Postore manages the gettext PO translation files of a project.
It merges extracted messages into the translations of every language
without losing translated text, and keeps the files in a canonical layout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	log = logging.GetLogger("init")
	cobra.OnInitialize(initConfig)
	config.SetDefaults(viper.GetViper())

	PostoreCmd.PersistentFlags().StringP("config", "c", "", "Alternate configuration file to read. Defaults to $HOME/.postore/")
	viper.BindPFlag("ConfigFileName", PostoreCmd.PersistentFlags().Lookup("config"))

	PostoreCmd.PersistentFlags().StringP("log-level", "L", config.DefaultLogLevel, "Log level. Should be one of 'debug', 'info', 'warn', 'error' or 'crit'")
	viper.BindPFlag(config.KeyLogLevel, PostoreCmd.PersistentFlags().Lookup("log-level"))
	PostoreCmd.PersistentFlags().String("log-file", "", "File to which the log will be written")
	viper.BindPFlag(config.KeyLogFile, PostoreCmd.PersistentFlags().Lookup("log-file"))
	PostoreCmd.PersistentFlags().BoolP("log-stdout", "o", false, "Enable stdout logging. Use for development or debugging.")
	viper.BindPFlag(config.KeyLogStdout, PostoreCmd.PersistentFlags().Lookup("log-stdout"))
	PostoreCmd.PersistentFlags().Bool("debug", false, "Enable debug mode for development")
	viper.BindPFlag(config.KeyDebug, PostoreCmd.PersistentFlags().Lookup("debug"))

	PostoreCmd.PersistentFlags().String("locale-dir", config.DefaultLocaleDirectory, "Directory holding the PO and POT files")
	viper.BindPFlag(config.KeyLocaleDirectory, PostoreCmd.PersistentFlags().Lookup("locale-dir"))
	PostoreCmd.PersistentFlags().String("locale-filename", config.DefaultLocaleFilename, "Base name of the primary PO and POT files")
	viper.BindPFlag(config.KeyLocaleFilename, PostoreCmd.PersistentFlags().Lookup("locale-filename"))
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		// A .env file is optional
		log.Debug("No .env file loaded", "error", err)
	}
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cfgFile := viper.GetString("ConfigFileName")
	if runtime.GOOS != "windows" {
		viper.AddConfigPath("/etc/postore")
	}

	osUser, err := user.Current()
	if err != nil {
		log.Panic("Unable to retrieve current user", "error", err)
	}
	viper.AddConfigPath(filepath.Join(osUser.HomeDir, ".postore"))
	viper.AddConfigPath(".")

	viper.SetConfigName("postore")
	viper.SetConfigType("toml")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	err = viper.ReadInConfig()
	logging.Initialize()
	if err != nil {
		log.Debug("No configuration file loaded", "error", err)
	}
}

// settings returns the current store settings
func settings() config.Settings {
	return config.FromViper(viper.GetViper())
}

// repository returns the translation store of the current settings
func repository() *store.Repository {
	return store.New(afero.NewOsFs(), settings(), nil)
}

// runE returns a cobra RunE function calling fnct. Panics raised in fnct,
// such as those of log.Panic, are logged and returned as an error.
func runE(fnct func(cmd *cobra.Command, args []string)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (rError error) {
		defer func() {
			if r := recover(); r != nil {
				rError = logging.LogPanicData(r)
			}
		}()
		fnct(cmd, args)
		return nil
	}
}
