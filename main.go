// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package main

import (
	"fmt"
	"os"

	"github.com/hexya-erp/postore/cmd"
	"github.com/hexya-erp/postore/src/config"
	"github.com/hexya-erp/postore/src/tools/exceptions"
	"github.com/spf13/viper"
)

func main() {
	if err := cmd.PostoreCmd.Execute(); err != nil {
		if userErr, ok := err.(exceptions.UserError); ok && viper.GetBool(config.KeyDebug) {
			fmt.Fprintln(os.Stderr, userErr.Debug)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
