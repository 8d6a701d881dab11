// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-mysql-admin",
	Short: "GoMySQL-Admin is a web service for managing MySQL users, grants and roles",
	Long: `GoMySQL-Admin is a web service for managing MySQL users and their grants.
It maps the privileges of every account to a role, built-in or custom.`,
	Args: cobra.OnlyValidArgs,
}

var configPath string // Path to the configuration directory

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "Path to the directory holding main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
