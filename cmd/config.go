package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeweft/weft/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage weft configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .weft.yaml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ".weft.yaml"
		if err := config.Save(config.DefaultConfig(), path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
