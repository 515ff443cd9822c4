package main

import (
	"fmt"
	"os"

	"github.com/hiveden/hwinventory/internal/config"
	"github.com/hiveden/hwinventory/internal/greet"
	"github.com/hiveden/hwinventory/internal/hw"
	"github.com/hiveden/hwinventory/internal/logging"
	"github.com/hiveden/hwinventory/internal/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

var (
	cfg       config.Config
	collector *hw.Collector
	flushLogs = func() {}
)

func main() {
	var configFile string

	rootCmd := &cobra.Command{
		Use:          "hwinventory",
		Short:        "Inspect the hardware of this machine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(viper.GetViper(), configFile)
			if err != nil {
				return err
			}

			logger, flush, err := logging.New(cfg.LogDevelopment)
			if err != nil {
				return err
			}
			flushLogs = flush

			collector = hw.NewCollector(
				hw.WithLogger(logger),
				hw.WithSortedInterfaces(cfg.SortInterfaces),
				hw.WithTimeout(cfg.CollectTimeout),
			)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file")
	rootCmd.PersistentFlags().Bool("sort-interfaces", false, "Sort network interfaces by name")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Upper bound for a single hardware collection (0 disables it)")
	rootCmd.PersistentFlags().Bool("log-development", false, "Human-readable debug logging")
	viper.BindPFlag(config.KeySortInterfaces, rootCmd.PersistentFlags().Lookup("sort-interfaces"))
	viper.BindPFlag(config.KeyCollectTimeout, rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag(config.KeyLogDevelopment, rootCmd.PersistentFlags().Lookup("log-development"))

	rootCmd.AddCommand(buildHardwareCommand())
	rootCmd.AddCommand(buildSystemCommand())
	rootCmd.AddCommand(buildGreetCommand())
	rootCmd.AddCommand(buildExportCommand())

	err := rootCmd.Execute()
	flushLogs()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func buildHardwareCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "hw",
		Short: "Show a hardware snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.Write(cmd.OutOrStdout(), collector.Collect(cmd.Context()), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", report.FormatText, "Output format: text, json or yaml")

	return cmd
}

func buildSystemCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "system",
		Short: "Show operating system details",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := collector.System(cmd.Context())
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(&info)
			if err != nil {
				return fmt.Errorf("failed to marshal system info: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func buildGreetCommand() *cobra.Command {
	var origin string

	cmd := &cobra.Command{
		Use:   "greet [name]",
		Short: "Print a greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if origin == "" {
				origin = cfg.GreetingOrigin
			}
			fmt.Fprintln(cmd.OutOrStdout(), greet.NewGreeter(origin).Greet(args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "", "Origin named in the greeting")

	return cmd
}

func buildExportCommand() *cobra.Command {
	var filePath, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a hardware snapshot to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if filePath == "" {
				return fmt.Errorf("file path must be specified with --file")
			}
			if err := report.ExportFile(filePath, collector.Collect(cmd.Context()), output); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Snapshot written to %s\n", filePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "File path to export the snapshot to")
	cmd.Flags().StringVarP(&output, "output", "o", report.FormatYAML, "Output format: text, json or yaml")

	return cmd
}
