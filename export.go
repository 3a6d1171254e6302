package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/migrant-roadmap/cliparse"
	"github.com/danielhkuo/migrant-roadmap/export"
	"github.com/danielhkuo/migrant-roadmap/models"
	"github.com/danielhkuo/migrant-roadmap/roadmap"
	"github.com/danielhkuo/migrant-roadmap/store"
)

var errNoRoadmap = errors.New("no roadmap has been generated yet")

func newExportCommand(cfg *cliparse.Config) *cobra.Command {
	var out, surveyID string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current roadmap as HTML",
		Long: `Render the most recently generated roadmap to an HTML file, the same
document the /api/roadmap/export endpoint serves. With --survey, export the
newest roadmap generated from that survey instead.

Example:
  fms-roadmap export --out roadmap.html
  fms-roadmap export --survey 0190a6e4-6f0c-7cc2-9a51-3c2f1b7d4e10 --out old.html
  fms-roadmap export -d /var/lib/fms/fms-roadmap.db --out -`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, *cfg, out, surveyID)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", export.Filename, `output file, "-" for stdout`)
	cmd.Flags().StringVar(&surveyID, "survey", "", "export the roadmap of this survey id instead of the current one")

	return cmd
}

func runExport(cmd *cobra.Command, flags cliparse.Config, out, surveyID string) error {
	_, dbConn, engine, err := setup(flags)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	builder := roadmap.NewBuilder(store.NewSurveyStore(dbConn), store.NewRoadmapStore(dbConn), engine)

	var current *models.Roadmap
	if surveyID != "" {
		current, err = builder.ForSurvey(cmd.Context(), surveyID)
	} else {
		current, err = builder.Current(cmd.Context())
	}
	if err != nil {
		return err
	}
	if current == nil {
		return errNoRoadmap
	}

	body := export.HTML(*current)

	if out == "-" {
		_, err = cmd.OutOrStdout().Write(body)
	} else {
		err = os.WriteFile(out, body, 0o644)
	}
	if err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	slog.Info("roadmap exported",
		"roadmap_id", current.ID,
		"recommendations", len(current.Recommendations),
		"path", out,
		"size", humanize.Bytes(uint64(len(body))),
	)
	return nil
}
