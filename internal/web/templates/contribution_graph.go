package templates

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/folio/internal/domain"
)

const (
	blockSize   = 12
	blockMargin = 4
	blockRadius = 2
	fontSize    = 14
	labelHeight = fontSize + 8
)

// ContributionGraph renders one calendar per visible year, a footer with the
// yearly totals and the level legend.
func ContributionGraph(props ContributionGraphProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		years := domain.PartitionByYear(props.Activities, props.Years)
		if len(years) == 0 {
			now := time.Now
			if props.Now != nil {
				now = props.Now
			}
			years = []domain.YearActivity{{Year: now().Year()}}
		}

		h := newHTMLWriter(w)
		h.raw(`<div class="flex w-full flex-col gap-4" data-slot="contribution-graph" id="contributions">`)
		for _, ya := range years {
			h.component(ctx, contributionCalendar(domain.BuildCalendar(ya, props.WeekStart), props.Locale))
		}
		h.raw(`<div class="flex flex-wrap items-center justify-between gap-2" data-slot="contribution-graph-footer">`)
		h.raw(`<div class="flex flex-col gap-1" data-slot="contribution-graph-total-count">`)
		for _, ya := range years {
			h.component(ctx, yearTotal(ya.Year, ya.Total, props.Locale))
		}
		h.raw(`</div>`)
		h.component(ctx, contributionLegend())
		h.raw(`</div></div>`)
		return h.err
	})
}

func contributionCalendar(cal domain.Calendar, locale string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		width := cal.Weeks*(blockSize+blockMargin) - blockMargin
		if cal.Weeks == 0 {
			width = 0
		}
		height := labelHeight + 7*(blockSize+blockMargin) - blockMargin

		h := newHTMLWriter(w)
		h.raw(`<div class="max-w-full overflow-x-auto overflow-y-hidden" data-slot="contribution-graph-calendar" data-year="`)
		h.num(cal.Year)
		h.raw(`"><svg class="block overflow-visible" width="`)
		h.num(width)
		h.raw(`" height="`)
		h.num(height)
		h.raw(`" viewBox="0 0 `)
		h.num(width)
		h.raw(` `)
		h.num(height)
		h.raw(`">`)

		if len(cal.MonthLabels) > 0 {
			h.raw(`<g class="fill-current">`)
			for _, m := range cal.MonthLabels {
				h.raw(`<text x="`)
				h.num(m.WeekIndex * (blockSize + blockMargin))
				h.raw(`" y="0" dominant-baseline="hanging" font-size="`)
				h.num(fontSize)
				h.raw(`">`)
				h.text(m.Label)
				h.raw(`</text>`)
			}
			h.raw(`</g>`)
		}

		for _, b := range cal.Blocks {
			h.component(ctx, contributionBlock(b, locale))
		}
		h.raw(`</svg></div>`)
		return h.err
	})
}

func contributionBlock(b domain.Block, locale string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		a := b.Activity
		h := newHTMLWriter(w)
		h.raw(`<rect class="`)
		h.raw(cellClass(a.Level))
		h.raw(`" data-level="`)
		h.raw(a.Level.Clamp().String())
		h.raw(`" data-count="`)
		h.raw(strconv.FormatInt(a.Count, 10))
		h.raw(`" data-date="`)
		h.raw(a.Date.Format(domain.DateLayout))
		h.raw(`" x="`)
		h.num(b.WeekIndex * (blockSize + blockMargin))
		h.raw(`" y="`)
		h.num(labelHeight + b.DayIndex*(blockSize+blockMargin))
		h.raw(`" width="`)
		h.num(blockSize)
		h.raw(`" height="`)
		h.num(blockSize)
		h.raw(`" rx="`)
		h.num(blockRadius)
		h.raw(`" ry="`)
		h.num(blockRadius)
		h.raw(`"><title>`)
		h.text(formatContributions(locale, a.Count) + " on " + formatDay(a))
		h.raw(`</title></rect>`)
		return h.err
	})
}

func yearTotal(year int, total int64, locale string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="flex items-center gap-2 " data-year="`)
		h.num(year)
		h.raw(`"><span class="text-muted-foreground text-sm">Year `)
		h.num(year)
		h.raw(`:</span><span class="inline-flex items-center justify-center rounded-md border border-transparent bg-secondary px-2 py-0.5 font-medium text-secondary-foreground text-xs" data-slot="badge">`)
		h.text(formatContributions(locale, total))
		h.raw(`</span></div>`)
		return h.err
	})
}

func contributionLegend() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="ml-auto flex items-center gap-[3px]" data-slot="contribution-graph-legend">`)
		h.raw(`<span class="mr-1 text-muted-foreground">Less</span>`)
		for _, l := range domain.Levels() {
			h.raw(`<div class="group relative flex h-3 w-3 items-center justify-center" data-level="`)
			h.raw(l.String())
			h.raw(`"><div class="h-full w-full rounded-sm border border-border `)
			h.raw(legendClass(l))
			h.raw(`"></div><span class="-top-8 absolute hidden rounded bg-popover px-2 py-1 text-popover-foreground text-xs shadow-md group-hover:block">Level `)
			h.raw(l.String())
			h.raw(`</span></div>`)
		}
		h.raw(`<span class="ml-1 text-muted-foreground">More</span>`)
		h.raw(`</div>`)
		return h.err
	})
}
