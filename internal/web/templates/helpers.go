package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/emiliopalmerini/folio/internal/domain"
)

// Cell fill per level, light then dark theme.
var cellClasses = [domain.LevelCount]string{
	`fill-[#ebedf0] dark:fill-zinc-800/50`,
	`fill-[#9be9a8] dark:fill-de-york-500/20`,
	`fill-[#40c463] dark:fill-de-york-500/40`,
	`fill-[#30a14e] dark:fill-de-york-500/70`,
	`fill-[#216e39] dark:fill-de-york-400`,
}

// Legend swatch background per level. Deliberately not the cell palette.
var legendClasses = [domain.LevelCount]string{
	"bg-muted",
	"bg-emerald-200 dark:bg-emerald-900",
	"bg-emerald-400 dark:bg-emerald-700",
	"bg-emerald-600 dark:bg-emerald-500",
	"bg-emerald-800 dark:bg-emerald-300",
}

func cellClass(l domain.Level) string {
	return cellClasses[l.Clamp()]
}

func legendClass(l domain.Level) string {
	return legendClasses[l.Clamp()]
}

// formatCount renders n with the thousands separators of locale.
// Unknown or empty locales fall back to English.
func formatCount(locale string, n int64) string {
	tag := language.English
	if locale != "" {
		if t, err := language.Parse(locale); err == nil {
			tag = t
		}
	}
	return message.NewPrinter(tag).Sprintf("%d", n)
}

func formatContributions(locale string, n int64) string {
	return formatCount(locale, n) + " contributions"
}

func formatDay(a domain.Activity) string {
	return a.Date.Format("Jan 2, 2006")
}

func yearPartialURL(year int) string {
	return fmt.Sprintf("/partials/contributions?from=%d&to=%d", year, year)
}

// htmlWriter writes markup and remembers the first error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes s escaped for element content or a quoted attribute value.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) num(n int) {
	h.raw(strconv.Itoa(n))
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}
