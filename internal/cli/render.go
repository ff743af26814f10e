package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/folio/internal/web"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the home page to a static HTML file",
	Long: `Render the home page to a static HTML file.

Examples:
  folio render                      # Write index.html
  folio render --out public/index.html`,
	RunE: runRender,
}

var renderOut string

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "index.html", "Output file")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer app.Close()

	f, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", renderOut, err)
	}

	server := web.NewServer(0, serverOptions(), logger, nil, app.ActivityRepo, app.ProjectRepo)
	if err := server.WriteHome(ctx, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOut, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", renderOut)
	return nil
}
