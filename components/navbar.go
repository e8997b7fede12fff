package components

import (
	"context"
	"io"
	"regexp"

	"github.com/a-h/templ"

	"github.com/eringen/blogfront/internal/markup"
)

// Routes served by the navigation entries.
const (
	HomeRoute     = "/"
	ProjectsRoute = "/projetos/"
	AboutRoute    = "/sobre/"
)

var (
	homePattern     = regexp.MustCompile(`^/$`)
	projectsPattern = regexp.MustCompile(`^/projetos`)
	aboutPattern    = regexp.MustCompile(`^/sobre`)
)

// NavEntry is one item of the navigation bar.
type NavEntry struct {
	Label   string
	Route   string
	Pattern *regexp.Regexp
	Icon    templ.Component
	Active  bool
}

// NavEntries returns Home, Projects and About in that order, each flagged
// active when path matches its own pattern. The patterns are tested
// independently, so any number of entries may be active.
func NavEntries(labels Labels, path string) []NavEntry {
	entries := []NavEntry{
		{Label: labels.Home, Route: HomeRoute, Pattern: homePattern, Icon: HomeIcon()},
		{Label: labels.Projects, Route: ProjectsRoute, Pattern: projectsPattern, Icon: ProjectsIcon()},
		{Label: labels.About, Route: AboutRoute, Pattern: aboutPattern, Icon: AboutIcon()},
	}
	for i := range entries {
		entries[i].Active = entries[i].Pattern.MatchString(path)
	}
	return entries
}

// NavigationBar renders the site menu for the page at path.
func NavigationBar(theme Theme, path string) templ.Component {
	entries := NavEntries(theme.Labels, path)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("nav", "class", theme.Nav)
		m.Open("ul", "class", theme.NavList)
		for _, e := range entries {
			class := theme.NavItem
			current := ""
			if e.Active {
				class = classes(theme.NavItem, theme.NavItemActive)
				current = "page"
			}
			m.Open("li")
			m.Open("a", "href", markup.Href(e.Route), "class", class, "title", e.Label, "aria-current", current)
			m.Open("span", "class", theme.NavIcon)
			m.Component(ctx, e.Icon)
			m.Close("span")
			m.Element("span", e.Label, "class", theme.NavLabel)
			m.Close("a")
			m.Close("li")
		}
		m.Close("ul")
		m.Close("nav")
		return m.Err()
	})
}
