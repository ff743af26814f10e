package web

import (
	"net/http"

	"github.com/emiliopalmerini/folio/internal/domain"
)

type activityJSON struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
	Level int    `json:"level"`
}

type yearJSON struct {
	Year       int            `json:"year"`
	Total      int64          `json:"total"`
	Activities []activityJSON `json:"activities"`
}

type projectJSON struct {
	ID          string `json:"id"`
	Link        string `json:"link"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Position    int    `json:"position"`
}

func (s *Server) handleAPIContributions(w http.ResponseWriter, r *http.Request) {
	sel, err := parseYearSelection(r.URL.Query())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	contrib, err := s.loadContributions(r.Context(), sel)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	years := make([]yearJSON, 0, len(contrib.visible))
	for _, ya := range domain.PartitionByYear(contrib.activities, contrib.visible) {
		activities := make([]activityJSON, len(ya.Activities))
		for i, a := range ya.Activities {
			activities[i] = activityJSON{
				Date:  a.Date.Format(domain.DateLayout),
				Count: a.Count,
				Level: int(a.Level),
			}
		}
		years = append(years, yearJSON{Year: ya.Year, Total: ya.Total, Activities: activities})
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"years": years})
}

func (s *Server) handleAPIProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.projectRepo.List(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	out := make([]projectJSON, len(projects))
	for i, p := range projects {
		out[i] = projectJSON{
			ID:          p.ID,
			Link:        p.Link,
			Title:       p.Title,
			Description: p.Description,
			Image:       p.Image,
			Position:    p.Position,
		}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"projects": out})
}
