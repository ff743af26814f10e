package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/folio/internal/domain"
	"github.com/emiliopalmerini/folio/internal/shared/middleware"
	"github.com/emiliopalmerini/folio/internal/web/templates"
)

// contributions is the calendar data for one request.
type contributions struct {
	stored     []int // years with at least one activity
	visible    []int
	activities []domain.Activity
}

// loadContributions resolves the visible years and fetches their activities.
// Without an explicit selection every year between the first and last stored
// year is visible so gap years still report zero, capped to the latest
// maxSpan years. An empty store shows the current year.
func (s *Server) loadContributions(ctx context.Context, sel yearSelection) (contributions, error) {
	stored, err := s.activityRepo.Years(ctx)
	if err != nil {
		return contributions{}, fmt.Errorf("list years: %w", err)
	}

	c := contributions{stored: stored}
	switch {
	case sel.Explicit:
		c.visible = domain.YearRange(sel.From, sel.To)
	case len(stored) > 0:
		c.visible = recentYears(stored)
	default:
		c.visible = []int{s.opts.Now().Year()}
	}

	from, to := yearBounds(c.visible[0], c.visible[len(c.visible)-1])
	c.activities, err = s.activityRepo.ListRange(ctx, from, to)
	if err != nil {
		return contributions{}, fmt.Errorf("list activities: %w", err)
	}
	return c, nil
}

func (s *Server) switcherYears(stored []int) []int {
	if len(stored) == 0 {
		return nil
	}
	return recentYears(stored)
}

// recentYears spans the ascending stored years, keeping the latest maxSpan.
func recentYears(stored []int) []int {
	first, last := stored[0], stored[len(stored)-1]
	if last-first >= maxSpan {
		first = last - maxSpan + 1
	}
	return domain.YearRange(first, last)
}

// homeView gathers the calendar and the project list concurrently.
func (s *Server) homeView(ctx context.Context, sel yearSelection) (templates.HomeView, error) {
	var (
		contrib  contributions
		projects []domain.Project
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contrib, err = s.loadContributions(ctx, sel)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.projectRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return templates.HomeView{}, err
	}

	return templates.HomeView{
		Title:    s.opts.Title,
		Graph:    s.graphProps(contrib.activities, contrib.visible),
		Years:    s.switcherYears(contrib.stored),
		Projects: projects,
	}, nil
}

// WriteHome renders the full home page to w, for static exports.
func (s *Server) WriteHome(ctx context.Context, w io.Writer) error {
	view, err := s.homeView(ctx, yearSelection{})
	if err != nil {
		return err
	}
	start := time.Now()
	if err := templates.Home(view).Render(ctx, w); err != nil {
		return fmt.Errorf("render home: %w", err)
	}
	if s.metrics != nil {
		s.metrics.RecordRender(ctx, "home", time.Since(start))
	}
	return nil
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	sel, err := parseYearSelection(r.URL.Query())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	view, err := s.homeView(r.Context(), sel)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.render(w, r, "home", http.StatusOK, templates.Home(view))
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.projectRepo.List(r.Context())
	if err != nil {
		s.respondError(w, r, fmt.Errorf("list projects: %w", err))
		return
	}

	s.render(w, r, "projects", http.StatusOK, templates.Projects(templates.ProjectsView{
		Title:    s.opts.Title,
		Projects: projects,
	}))
}

// handleProjectRedirect sends visitors to the project's external link.
func (s *Server) handleProjectRedirect(w http.ResponseWriter, r *http.Request) {
	project, err := s.projectRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if project.Link == "" {
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}
	link := templ.URL(project.Link)
	if link == templ.FailedSanitizationURL {
		s.log.Warn("refusing unsafe project link", zap.String("id", project.ID))
		s.render(w, r, "not_found", http.StatusNotFound, templates.NotFound("Project link unavailable"))
		return
	}
	http.Redirect(w, r, string(link), http.StatusFound)
}

func (s *Server) handleContributionsPartial(w http.ResponseWriter, r *http.Request) {
	sel, err := parseYearSelection(r.URL.Query())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	// Full page for direct navigation
	if !middleware.IsHTMX(r) {
		target := "/"
		if sel.Explicit {
			target += "?" + url.Values{
				"from": {strconv.Itoa(sel.From)},
				"to":   {strconv.Itoa(sel.To)},
			}.Encode()
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	contrib, err := s.loadContributions(r.Context(), sel)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.render(w, r, "contribution_graph", http.StatusOK,
		templates.ContributionGraph(s.graphProps(contrib.activities, contrib.visible)))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "not_found", http.StatusNotFound, templates.NotFound("Page not found"))
}
