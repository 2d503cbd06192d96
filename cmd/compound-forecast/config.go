package main

import (
	"github.com/iwvelando/compound-forecast/pkg/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCmd(v *viper.Viper, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: "Print the configuration after applying the config file, environment variables\n" +
			"and flags. The output is a valid config file, see " + constants.ExampleConfigFile + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(v, *configPath)
			if err != nil {
				return err
			}
			defer a.sync()

			data, err := a.conf.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
