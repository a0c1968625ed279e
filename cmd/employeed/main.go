// Command employeed runs the approval and activity workflow engine.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "employeed",
		Short:        "employeed — approval queue, activity log, and dashboard push for the AI employee vault",
		Version:      config.Version,
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("employeed {{.Version}}\n")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and exit",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "employeed %s\n", config.Version)
		},
	}
}

// newLogger builds the process-wide logger from the configured level.
func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		log.WithField("level", level).Warn("Unknown log level, using info")
	}
	log.SetLevel(lvl)

	return log
}
