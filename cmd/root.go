package cmd

import (
	"fmt"
	"os"

	"menu-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "menu-manager",
	Short: "Menu Manager Service",
	Long: `Menu Manager serves a three-level restaurant catalog (menus, submenus,
dishes) backed by MySQL with a Redis read cache, and keeps it synchronized
with a spreadsheet workbook held in object storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format so CLI errors stay readable outside log collectors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
