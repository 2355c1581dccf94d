// Package main provides the docslicer CLI.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/docslicer/docslicer/internal/buildinfo"
)

const (
	defaultSource = "GUIDE.md"
	defaultOutput = "dist/guide"
)

func main() {
	//nolint:forbidigo // main must exit with the command status code.
	os.Exit(run())
}

func run() int {
	log := newLogger()

	root := &cobra.Command{
		Use:           "docslicer",
		Short:         "Split a markdown guide into per-section files and serve it to agents",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug output")
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	root.AddCommand(
		newExplodeCommand(log),
		newCheckCommand(log),
		newServeCommand(),
	)

	if err := root.Execute(); err != nil {
		log.Error(err)
		return 1
	}

	return 0
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return log
}
