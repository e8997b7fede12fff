package components

import "github.com/a-h/templ"

const iconAttrs = `xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"`

// HomeIcon is the house glyph used by the Home entry.
func HomeIcon() templ.Component {
	return templ.Raw(`<svg ` + iconAttrs + `><path d="M3 9l9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"/><polyline points="9 22 9 12 15 12 15 22"/></svg>`)
}

// ProjectsIcon is the folder glyph used by the Projects entry.
func ProjectsIcon() templ.Component {
	return templ.Raw(`<svg ` + iconAttrs + `><path d="M22 19a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h5l2 3h9a2 2 0 0 1 2 2z"/></svg>`)
}

// AboutIcon is the person glyph used by the About entry.
func AboutIcon() templ.Component {
	return templ.Raw(`<svg ` + iconAttrs + `><path d="M20 21v-2a4 4 0 0 0-4-4H8a4 4 0 0 0-4 4v2"/><circle cx="12" cy="7" r="4"/></svg>`)
}
