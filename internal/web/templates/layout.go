package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Page is the HTML shell. Its children are rendered inside <main>.
func Page(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<!doctype html><html lang="en" class="dark"><head><meta charset="utf-8"/>`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/><title>`)
		h.text(title)
		h.raw(`</title><script src="https://cdn.tailwindcss.com"></script>`)
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script></head>`)
		h.raw(`<body class="bg-zinc-950 text-zinc-100"><main class="mx-auto flex max-w-5xl flex-col gap-10 px-4 py-10">`)
		h.component(ctx, templ.GetChildren(ctx))
		h.raw(`</main></body></html>`)
		return h.err
	})
}

// Home renders the portfolio landing page.
func Home(view HomeView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="flex flex-col gap-4"><div class="flex items-center justify-between"><h2 class="font-bold text-lg">Contributions</h2>`)
		h.component(ctx, yearSwitcher(view.Years))
		h.raw(`</div>`)
		h.component(ctx, ContributionGraph(view.Graph))
		h.raw(`</section><section class="flex flex-col gap-4"><h2 class="font-bold text-lg">Projects</h2>`)
		h.component(ctx, ProjectGrid(view.Projects))
		h.raw(`</section>`)
		return h.err
	})
	return withChildren(Page(view.Title), body)
}

// Projects renders the standalone projects page.
func Projects(view ProjectsView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="flex flex-col gap-4"><h1 class="font-bold text-2xl">Projects</h1>`)
		h.component(ctx, ProjectGrid(view.Projects))
		h.raw(`</section>`)
		return h.err
	})
	return withChildren(Page(view.Title), body)
}

// NotFound is the 404 page.
func NotFound(message string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="flex flex-col gap-2"><h1 class="font-bold text-2xl">Not found</h1><p class="text-zinc-500">`)
		h.text(message)
		h.raw(`</p><a class="underline" href="/">Back home</a></section>`)
		return h.err
	})
	return withChildren(Page("Not found"), body)
}

func yearSwitcher(years []int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(years) < 2 {
			return nil
		}
		h := newHTMLWriter(w)
		h.raw(`<nav class="flex gap-2 text-sm" data-slot="year-switcher">`)
		for _, y := range years {
			h.raw(`<button type="button" class="rounded px-2 py-1 hover:bg-zinc-800" hx-get="`)
			h.text(yearPartialURL(y))
			h.raw(`" hx-target="#contributions" hx-swap="outerHTML">`)
			h.num(y)
			h.raw(`</button>`)
		}
		h.raw(`</nav>`)
		return h.err
	})
}

func withChildren(parent, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return parent.Render(templ.WithChildren(ctx, children), w)
	})
}
