package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/folio/internal/domain"
)

const githubMarkPath = `M8 0c4.42 0 8 3.58 8 8a8.013 8.013 0 0 1-5.45 7.59c-.4.08-.55-.17-.55-.38 0-.27.01-1.13.01-2.2 0-.75-.25-1.23-.54-1.48 1.78-.2 3.65-.88 3.65-3.95 0-.88-.31-1.59-.82-2.15.08-.2.36-1.02-.08-2.12 0 0-.67-.22-2.2.82-.64-.18-1.32-.27-2-.27-.68 0-1.36.09-2 .27-1.53-1.03-2.2-.82-2.2-.82-.44 1.1-.16 1.92-.08 2.12-.51.56-.82 1.28-.82 2.15 0 3.06 1.86 3.75 3.64 3.95-.23.2-.44.55-.51 1.07-.46.21-1.61.55-2.33-.66-.15-.24-.6-.83-1.23-.82-.67.01-.27.38.01.53.34.19.73.9.82 1.13.16.45.68 1.31 2.69.94 0 .67.01 1.3.01 1.49 0 .21-.15.45-.55.38A7.995 7.995 0 0 1 0 8c0-4.42 3.58-8 8-8Z`

// ProjectCard renders p as a single link: icon, title and clamped
// description on the left, thumbnail on the right.
func ProjectCard(p domain.Project) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<a href="`)
		h.text(string(templ.URL(p.Link)))
		h.raw(`" class="group flex border border-zinc-800 rounded-xl overflow-hidden bg-zinc-900 transition-colors min-h-48 sm:min-h-56" data-slot="project-card">`)
		h.raw(`<div class="flex flex-col p-5 sm:p-7 gap-4 flex-1 justify-between">`)
		h.component(ctx, githubIcon(30, "#FFFFFF"))
		h.raw(`<div class="flex flex-col gap-1"><p class="text-white font-bold text-base sm:text-lg">`)
		h.text(p.Title)
		h.raw(`</p><p class="text-zinc-500 text-xs sm:text-sm leading-relaxed line-clamp-3">`)
		h.text(p.Description)
		h.raw(`</p></div></div>`)
		h.raw(`<div class="w-24 sm:w-36 md:w-56 bg-zinc-800 rounded-tl-lg mt-7 group-hover:bg-zinc-700 transition-colors">`)
		h.raw(`<img src="`)
		h.text(p.Image)
		h.raw(`" alt="`)
		h.text(p.Title)
		h.raw(`" class="w-full h-full object-cover rounded-tl-lg"/>`)
		h.raw(`</div></a>`)
		return h.err
	})
}

// ProjectGrid renders the cards in the given order.
func ProjectGrid(projects []domain.Project) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		if len(projects) == 0 {
			h.raw(`<p class="text-zinc-500 text-sm" data-slot="project-grid-empty">No projects yet.</p>`)
			return h.err
		}
		h.raw(`<div class="grid grid-cols-1 gap-4 lg:grid-cols-2" data-slot="project-grid">`)
		for _, p := range projects {
			h.component(ctx, ProjectCard(p))
		}
		h.raw(`</div>`)
		return h.err
	})
}

func githubIcon(size int, color string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16" aria-hidden="true" width="`)
		h.num(size)
		h.raw(`" height="`)
		h.num(size)
		h.raw(`" fill="`)
		h.text(color)
		h.raw(`"><path d="`)
		h.raw(githubMarkPath)
		h.raw(`"></path></svg>`)
		return h.err
	})
}
