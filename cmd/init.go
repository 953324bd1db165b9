package cmd

import (
	"github.com/spf13/cobra"

	"github.com/freshnutrients/agrichat/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize agrichat configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure agrichat and generates a .agrichat.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
