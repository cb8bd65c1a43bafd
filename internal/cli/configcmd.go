package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nlpwalk/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to nlpwalk.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(GetRootDir(), "nlpwalk.yaml")
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.DefaultConfig().Save(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(GetConfig())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
}
