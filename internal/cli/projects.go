package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage project cards",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects in display order",
	RunE:  runProjectsList,
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsDelete,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
}

func runProjectsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer app.Close()

	projects, err := app.ProjectRepo.List(ctx)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tID\tTITLE\tLINK")
	for _, p := range projects {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.Position, p.ID, p.Title, p.Link)
	}
	return w.Flush()
}

func runProjectsDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.ProjectRepo.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", args[0])
	return nil
}
