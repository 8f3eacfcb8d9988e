// Copyright 2018 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration file utilities",
	Long:  `Postore configuration file (postore.toml) utilities`,
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Scaffold a Postore configuration file",
	Long: `Create a Postore configuration file postore.toml in the current directory. Use the -c flag to specify another destination file.
All settings passed as environment variables or as flags will be set in the config file.`,
	RunE: runE(func(cmd *cobra.Command, args []string) {
		cfgFile := viper.GetString("ConfigFileName")
		if cfgFile == "" {
			cwd, err := os.Getwd()
			if err != nil {
				log.Panic("Unable to get current directory", "error", err)
			}
			cfgFile = filepath.Join(cwd, "postore.toml")
		}
		f, err := os.Create(cfgFile)
		if err != nil {
			log.Panic("Unable to create configuration file", "file", cfgFile, "error", err)
		}
		defer f.Close()
		if err := settings().WriteTOML(f); err != nil {
			log.Panic("Unable to write configuration file", "file", cfgFile, "error", err)
		}
		log.Info("Configuration file written", "file", cfgFile)
	}),
}

func init() {
	PostoreCmd.AddCommand(configCmd)
	configCmd.AddCommand(scaffoldCmd)
}
