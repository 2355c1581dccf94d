package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/docslicer/docslicer/internal/sections"
)

func newCheckCommand(log *logrus.Logger) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the source guide for problems without writing any output",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("failed to read source document: %w", err)
			}

			doc := sections.ScanDocument(data)
			result := sections.CheckIndex(sections.BuildIndex(doc))
			for _, issue := range result.Issues {
				entry := log.WithField("code", issue.Code)
				if issue.Slug != "" {
					entry = entry.WithField("slug", issue.Slug)
				}
				if issue.Severity == sections.SeverityError {
					entry.Error(issue.Message)
				} else {
					entry.Warn(issue.Message)
				}
			}

			if !result.Valid {
				return fmt.Errorf("document check failed with %d issue(s)", len(result.Issues))
			}

			log.Infof("Document OK: %d section(s)", len(doc.Sections))
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", defaultSource, "Path to the source markdown guide")

	return cmd
}
