package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/folio/internal/domain"
	"github.com/emiliopalmerini/folio/internal/seed"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import activity or projects from a JSON or YAML file",
}

var importActivitiesCmd = &cobra.Command{
	Use:   "activities <file>",
	Short: "Import daily contribution counts",
	Long: `Import daily contribution counts.

The file holds a list of {date, count, level} records. Level is optional and is
derived from the busiest day in the file when omitted. Existing days are
replaced.

Examples:
  folio import activities contributions.json
  folio import activities 2024.yaml --replace   # Drop stored days in the file's years first`,
	Args: cobra.ExactArgs(1),
	RunE: runImportActivities,
}

var importProjectsCmd = &cobra.Command{
	Use:   "projects <file>",
	Short: "Import project cards",
	Long: `Import project cards.

The file holds a list of {link, title, description, image} records, appended
after the existing projects in file order.

Examples:
  folio import projects projects.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runImportProjects,
}

var importReplace bool

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.AddCommand(importActivitiesCmd)
	importCmd.AddCommand(importProjectsCmd)

	importActivitiesCmd.Flags().BoolVar(&importReplace, "replace", false, "Delete stored activity in the imported years before importing")
}

func openSeed(path string) (*os.File, seed.Format, error) {
	format, err := seed.FormatFromPath(path)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, format, nil
}

func runImportActivities(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	f, format, err := openSeed(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	activities, err := seed.DecodeActivities(f, format)
	if err != nil {
		return err
	}

	app, err := NewAppContext(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer app.Close()

	if importReplace && len(activities) > 0 {
		first := activities[0].Date.Year()
		last := activities[len(activities)-1].Date.Year()
		from := time.Date(first, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(last, time.December, 31, 0, 0, 0, 0, time.UTC)
		deleted, err := app.ActivityRepo.DeleteRange(ctx, from, to)
		if err != nil {
			return err
		}
		logger.Info("cleared stored activity",
			zap.Int("from", first), zap.Int("to", last), zap.Int64("deleted", deleted))
	}

	if err := app.ActivityRepo.Upsert(ctx, activities); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d days (%d contributions)\n", len(activities), total(activities))
	return nil
}

func total(activities []domain.Activity) int64 {
	var n int64
	for _, a := range activities {
		n += a.Count
	}
	return n
}

func runImportProjects(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	f, format, err := openSeed(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	projects, err := seed.DecodeProjects(f, format)
	if err != nil {
		return err
	}

	app, err := NewAppContext(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer app.Close()

	for i := range projects {
		if err := app.ProjectRepo.Create(ctx, &projects[i]); err != nil {
			return fmt.Errorf("project %q: %w", projects[i].Title, err)
		}
		logger.Debug("project imported", zap.String("id", projects[i].ID), zap.String("title", projects[i].Title))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d projects\n", len(projects))
	return nil
}
