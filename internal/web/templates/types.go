package templates

import (
	"time"

	"github.com/emiliopalmerini/folio/internal/domain"
)

// ContributionGraphProps is the input of the contribution graph.
type ContributionGraphProps struct {
	Activities []domain.Activity
	// Years lists the visible years. Years without activity still get a footer
	// entry. When empty the years present in Activities are shown.
	Years     []int
	Locale    string // BCP 47 tag used for thousands separators
	WeekStart time.Weekday
	// Now reports the current time; the footer falls back to its year when
	// there is nothing else to show. Defaults to time.Now.
	Now func() time.Time
}

// HomeView is everything the home page renders.
type HomeView struct {
	Title    string
	Graph    ContributionGraphProps
	Years    []int // years offered by the year switcher
	Projects []domain.Project
}

// ProjectsView is the standalone projects page.
type ProjectsView struct {
	Title    string
	Projects []domain.Project
}
