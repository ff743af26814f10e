package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/emiliopalmerini/folio/internal/domain"
	"github.com/emiliopalmerini/folio/internal/ports"
)

type fakeActivities struct {
	activities []domain.Activity
	err        error
}

func (f *fakeActivities) Upsert(ctx context.Context, activities []domain.Activity) error {
	f.activities = append(f.activities, activities...)
	return f.err
}

func (f *fakeActivities) ListRange(ctx context.Context, from, to time.Time) ([]domain.Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Activity
	for _, a := range f.activities {
		if !a.Date.Before(from) && !a.Date.After(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeActivities) Years(ctx context.Context) ([]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[int]bool{}
	var years []int
	for _, a := range f.activities {
		if y := a.Date.Year(); !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	return years, nil
}

func (f *fakeActivities) DeleteRange(ctx context.Context, from, to time.Time) (int64, error) {
	return 0, f.err
}

type fakeProjects struct {
	projects []domain.Project
	err      error
}

func (f *fakeProjects) Create(ctx context.Context, p *domain.Project) error {
	f.projects = append(f.projects, *p)
	return f.err
}

func (f *fakeProjects) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("project %s: %w", id, domain.ErrProjectNotFound)
}

func (f *fakeProjects) List(ctx context.Context) ([]domain.Project, error) {
	return f.projects, f.err
}

func (f *fakeProjects) Delete(ctx context.Context, id string) error {
	return f.err
}

type fakeMetrics struct {
	mu    sync.Mutex
	views []string
}

func (m *fakeMetrics) RecordRender(ctx context.Context, view string, took time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views = append(m.views, view)
}

func (m *fakeMetrics) Close(ctx context.Context) error { return nil }

var (
	_ ports.ActivityRepository = (*fakeActivities)(nil)
	_ ports.ProjectRepository  = (*fakeProjects)(nil)
	_ ports.RenderMetrics      = (*fakeMetrics)(nil)
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

type fixture struct {
	server     *Server
	activities *fakeActivities
	projects   *fakeProjects
	metrics    *fakeMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		activities: &fakeActivities{activities: []domain.Activity{
			{Date: day(t, "2022-05-01"), Count: 3, Level: domain.Level1},
			{Date: day(t, "2024-03-06"), Count: 1234, Level: domain.Level4},
		}},
		projects: &fakeProjects{projects: []domain.Project{
			{ID: "p1", Link: "https://github.com/a/b", Title: "Alpha", Description: "first", Position: 1},
			{ID: "p2", Title: "Beta", Position: 2},
			{ID: "p3", Link: "javascript:alert(1)", Title: "Gamma", Position: 3},
		}},
		metrics: &fakeMetrics{},
	}
	f.server = NewServer(0, Options{
		Title:  "Portfolio",
		Locale: "en-US",
		Now:    func() time.Time { return time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC) },
	}, nil, f.metrics, f.activities, f.projects)
	return f
}

func (f *fixture) do(t *testing.T, method, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("GET /health = %d %q, want 200 ok", rec.Code, rec.Body.String())
	}
}

func TestHome_RendersGraphAndProjects(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`data-slot="contribution-graph"`,
		`data-slot="project-card"`,
		`data-slot="year-switcher"`,
		"Alpha",
		"Beta",
		"1,234 contributions",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("home body missing %q", want)
		}
	}
	// 2023 has no activity but lies between stored years.
	for _, year := range []string{"2022", "2023", "2024"} {
		if !strings.Contains(body, `data-year="`+year+`"`) {
			t.Errorf("home body missing year %s", year)
		}
	}

	if diff := cmp.Diff([]string{"home"}, f.metrics.views); diff != "" {
		t.Errorf("recorded renders mismatch (-want +got):\n%s", diff)
	}
}

func TestHome_ExplicitYearSelection(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/?from=2024&to=2024", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, `data-year="2022"`) {
		t.Error("year 2022 rendered outside the selection")
	}
	if !strings.Contains(body, `data-year="2024"`) {
		t.Error("year 2024 missing from the selection")
	}
}

func TestHome_EmptyStoreShowsCurrentYear(t *testing.T) {
	f := newFixture(t)
	f.activities.activities = nil
	f.projects.projects = nil

	rec := f.do(t, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Year 2026:") {
		t.Error("empty store should report the current year")
	}
	if !strings.Contains(body, `data-slot="project-grid-empty"`) {
		t.Error("empty project grid state missing")
	}
}

func TestHome_BadQuery(t *testing.T) {
	f := newFixture(t)
	for _, q := range []string{"from=abc", "from=2024&to=2023", "from=1900", "from=2000&to=2030"} {
		rec := f.do(t, http.MethodGet, "/?"+q, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET /?%s status = %d, want 400", q, rec.Code)
		}
	}
}

func TestHome_RepositoryErrorIs500(t *testing.T) {
	f := newFixture(t)
	f.projects.err = errors.New("boom")

	rec := f.do(t, http.MethodGet, "/", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("internal error leaked to the client")
	}
}

func TestProjectsPage(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/projects", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if n := strings.Count(rec.Body.String(), `data-slot="project-card"`); n != 3 {
		t.Errorf("project cards = %d, want 3", n)
	}
}

func TestProjectRedirect(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/projects/p1", nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "https://github.com/a/b" {
		t.Errorf("Location = %q", loc)
	}

	rec = f.do(t, http.MethodGet, "/projects/p2", nil)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/projects" {
		t.Errorf("project without link = %d %q, want 303 /projects", rec.Code, rec.Header().Get("Location"))
	}

	rec = f.do(t, http.MethodGet, "/projects/p3", nil)
	if rec.Code != http.StatusNotFound || rec.Header().Get("Location") != "" {
		t.Errorf("unsafe link = %d %q, want 404 without Location", rec.Code, rec.Header().Get("Location"))
	}

	rec = f.do(t, http.MethodGet, "/projects/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing project status = %d, want 404", rec.Code)
	}
}

func TestContributionsPartial_HTMX(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/partials/contributions?from=2024&to=2024",
		http.Header{"Hx-Request": {"true"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("fragment should not contain the page shell")
	}
	if !strings.HasPrefix(body, "<div") || !strings.Contains(body, `id="contributions"`) {
		t.Errorf("fragment does not start with the graph root: %.80s", body)
	}
}

func TestContributionsPartial_DirectNavigationRedirects(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/partials/contributions?from=2023&to=2023", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse Location: %v", err)
	}
	if loc.Path != "/" || loc.Query().Get("from") != "2023" || loc.Query().Get("to") != "2023" {
		t.Errorf("Location = %q, want /?from=2023&to=2023", loc)
	}
}

func TestAPIContributions(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/contributions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got struct {
		Years []yearJSON `json:"years"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []yearJSON{
		{Year: 2022, Total: 3, Activities: []activityJSON{{Date: "2022-05-01", Count: 3, Level: 1}}},
		{Year: 2023, Total: 0, Activities: []activityJSON{}},
		{Year: 2024, Total: 1234, Activities: []activityJSON{{Date: "2024-03-06", Count: 1234, Level: 4}}},
	}
	if diff := cmp.Diff(want, got.Years); diff != "" {
		t.Errorf("years mismatch (-want +got):\n%s", diff)
	}
}

func TestAPIProjects(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/projects", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got struct {
		Projects []projectJSON `json:"projects"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Projects) != 3 || got.Projects[0].Title != "Alpha" || got.Projects[1].ID != "p2" {
		t.Errorf("projects = %+v", got.Projects)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestParseYearSelection(t *testing.T) {
	tests := []struct {
		query   string
		want    yearSelection
		wantErr bool
	}{
		{query: "", want: yearSelection{}},
		{query: "from=2023", want: yearSelection{From: 2023, To: 2023, Explicit: true}},
		{query: "to=2021", want: yearSelection{From: 2021, To: 2021, Explicit: true}},
		{query: "from=2020&to=2024", want: yearSelection{From: 2020, To: 2024, Explicit: true}},
		{query: "from=x", wantErr: true},
		{query: "from=2024&to=2020", wantErr: true},
		{query: "from=10000", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			got, err := parseYearSelection(q)
			if tt.wantErr {
				if !errors.Is(err, errBadRequest) {
					t.Errorf("err = %v, want errBadRequest", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWriteHome(t *testing.T) {
	f := newFixture(t)
	var sb strings.Builder
	if err := f.server.WriteHome(context.Background(), &sb); err != nil {
		t.Fatalf("WriteHome: %v", err)
	}
	if !strings.HasPrefix(sb.String(), "<!doctype html>") {
		t.Errorf("static page should start with a doctype: %.40s", sb.String())
	}
	if !strings.Contains(sb.String(), `data-slot="contribution-graph"`) {
		t.Error("static page missing the contribution graph")
	}
}

func TestAPIContributions_EmptyStoreReportsCurrentYear(t *testing.T) {
	f := newFixture(t)
	f.activities.activities = nil

	rec := f.do(t, http.MethodGet, "/api/contributions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got struct {
		Years []yearJSON `json:"years"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []yearJSON{{Year: 2026, Total: 0, Activities: []activityJSON{}}}
	if diff := cmp.Diff(want, got.Years); diff != "" {
		t.Errorf("years mismatch (-want +got):\n%s", diff)
	}
}

func TestAPIContributions_DefaultSpanIsCapped(t *testing.T) {
	f := newFixture(t)
	f.activities.activities = []domain.Activity{
		{Date: day(t, "1970-01-01"), Count: 1, Level: domain.Level1},
		{Date: day(t, "2024-03-06"), Count: 2, Level: domain.Level4},
	}

	rec := f.do(t, http.MethodGet, "/api/contributions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got struct {
		Years []yearJSON `json:"years"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Years) != maxSpan {
		t.Fatalf("visible years = %d, want %d", len(got.Years), maxSpan)
	}
	if got.Years[0].Year != 2024-maxSpan+1 || got.Years[len(got.Years)-1].Year != 2024 {
		t.Errorf("visible span = %d..%d", got.Years[0].Year, got.Years[len(got.Years)-1].Year)
	}
}
