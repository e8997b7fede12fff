// Package components holds the presentational pieces shared by every page:
// the navigation bar, the post header and the previous/next post links.
//
// Every component is a pure function from its props to a templ.Component.
// Styling is never global: callers pass a Theme value down explicitly.
package components

import "strings"

// Labels are the user-facing strings rendered by the components.
type Labels struct {
	Home     string
	Projects string
	About    string
	Reading  string // rendered as "<Reading>: <N>min"
	Previous string
	Next     string
}

// EnglishLabels is the default label set.
func EnglishLabels() Labels {
	return Labels{
		Home:     "Home",
		Projects: "Projects",
		About:    "About",
		Reading:  "Reading",
		Previous: "Previous",
		Next:     "Next",
	}
}

// PortugueseLabels matches the wording of the original Portuguese site.
func PortugueseLabels() Labels {
	return Labels{
		Home:     "Home",
		Projects: "Projetos",
		About:    "Sobre",
		Reading:  "Leitura",
		Previous: "Anterior",
		Next:     "Próximo",
	}
}

// LabelsFor returns the label set for a locale tag such as "pt" or "pt-BR".
// Unknown locales get English.
func LabelsFor(locale string) Labels {
	lang := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	switch lang {
	case "pt":
		return PortugueseLabels()
	default:
		return EnglishLabels()
	}
}

// Theme is the immutable set of style tokens consumed by the components.
// Fields are CSS class names; Colors holds named colour tokens that a
// layout can expose as CSS custom properties.
type Theme struct {
	Nav           string
	NavList       string
	NavItem       string
	NavItemActive string
	NavIcon       string
	NavLabel      string

	Header string
	Badge  string
	Title  string

	Recommended      string
	RecommendedItem  string
	RecommendedLabel string
	RecommendedLink  string

	Colors map[string]string
	Labels Labels
}

// DefaultTheme returns the class names styled by the embedded stylesheet.
func DefaultTheme() Theme {
	return Theme{
		Nav:           "menu-nav",
		NavList:       "menu-nav__list",
		NavItem:       "menu-item",
		NavItemActive: "menu-item--active",
		NavIcon:       "menu-item__icon",
		NavLabel:      "menu-item__label",

		Header: "post-header",
		Badge:  "post-header__badge",
		Title:  "post-header__title",

		Recommended:      "recommended",
		RecommendedItem:  "recommended__item",
		RecommendedLabel: "recommended__title",
		RecommendedLink:  "recommended__link",

		Colors: map[string]string{
			"primary":        "#8257e6",
			"background":     "#16181d",
			"menuBackground": "#1f232e",
			"text":           "#e1e1e6",
			"badge":          "#1f232e",
		},
		Labels: EnglishLabels(),
	}
}

// WithLabels returns a copy of t using l.
func (t Theme) WithLabels(l Labels) Theme {
	t.Labels = l
	t.Colors = t.colors()
	return t
}

// WithColor returns a copy of t with the colour token name set to value.
func (t Theme) WithColor(name, value string) Theme {
	colors := t.colors()
	colors[name] = value
	t.Colors = colors
	return t
}

// Color returns the colour token name, or "" when it is not set.
func (t Theme) Color(name string) string {
	return t.Colors[name]
}

// colors copies the colour map so derived themes never share it.
func (t Theme) colors() map[string]string {
	out := make(map[string]string, len(t.Colors)+1)
	for k, v := range t.Colors {
		out[k] = v
	}
	return out
}

func classes(names ...string) string {
	var parts []string
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}
