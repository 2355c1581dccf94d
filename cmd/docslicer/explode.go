package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/docslicer/docslicer/internal/exploder"
)

func newExplodeCommand(log *logrus.Logger) *cobra.Command {
	var (
		source string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "explode",
		Short: "Split the source guide into per-section markdown files",
		Long: "Split the source guide into one markdown file per second-level heading,\n" +
			"plus an index.md landing page and a sections.json index.\n\n" +
			"The output directory is deleted recursively and regenerated on every run;\n" +
			"treat it as disposable.",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			result, err := exploder.New(log).Explode(source, out)
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"sections": result.SectionCount,
				"files":    len(result.Files),
				"out":      result.OutputDir,
			}).Debug("Explode completed")

			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", defaultSource, "Path to the source markdown guide")
	cmd.Flags().StringVarP(&out, "out", "o", defaultOutput, "Output directory (regenerated from scratch)")

	return cmd
}
