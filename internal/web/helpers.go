package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/folio/internal/domain"
	"github.com/emiliopalmerini/folio/internal/web/templates"
)

const (
	// maxSpan bounds how many calendars one request can render.
	maxSpan = 20
)

var errBadRequest = errors.New("bad request")

// yearSelection is the year range requested through ?from=&to=.
type yearSelection struct {
	From, To int
	Explicit bool
}

func parseYearSelection(q url.Values) (yearSelection, error) {
	fromStr, toStr := q.Get("from"), q.Get("to")
	if fromStr == "" && toStr == "" {
		return yearSelection{}, nil
	}
	if fromStr == "" {
		fromStr = toStr
	}
	if toStr == "" {
		toStr = fromStr
	}

	from, err := parseYear(fromStr)
	if err != nil {
		return yearSelection{}, err
	}
	to, err := parseYear(toStr)
	if err != nil {
		return yearSelection{}, err
	}
	if to < from {
		return yearSelection{}, fmt.Errorf("%w: to %d is before from %d", errBadRequest, to, from)
	}
	if to-from >= maxSpan {
		return yearSelection{}, fmt.Errorf("%w: at most %d years per request", errBadRequest, maxSpan)
	}
	return yearSelection{From: from, To: to, Explicit: true}, nil
}

func parseYear(s string) (int, error) {
	y, err := strconv.Atoi(s)
	if err != nil || y < domain.MinYear || y > domain.MaxYear {
		return 0, fmt.Errorf("%w: invalid year %q", errBadRequest, s)
	}
	return y, nil
}

func yearBounds(from, to int) (time.Time, time.Time) {
	return time.Date(from, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(to, time.December, 31, 0, 0, 0, 0, time.UTC)
}

func (s *Server) graphProps(activities []domain.Activity, years []int) templates.ContributionGraphProps {
	return templates.ContributionGraphProps{
		Activities: activities,
		Years:      years,
		Locale:     s.opts.Locale,
		WeekStart:  s.opts.WeekStart,
		Now:        s.opts.Now,
	}
}

// render buffers c so a failed render can still become a 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, view string, status int, c templ.Component) {
	start := time.Now()
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		s.serverError(w, r, fmt.Errorf("render %s: %w", view, err))
		return
	}
	if s.metrics != nil {
		s.metrics.RecordRender(r.Context(), view, time.Since(start))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("error encoding JSON", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errBadRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrProjectNotFound):
		s.render(w, r, "not_found", http.StatusNotFound, templates.NotFound(err.Error()))
	default:
		s.serverError(w, r, err)
	}
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
