package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/blogfront/internal/markup"
)

// PostHeaderData is the banner shown above a post body.
type PostHeaderData struct {
	Category   string
	TimeToRead int // minutes
	Title      string
}

// ReadingLabel formats minutes with the theme's reading label, e.g. "Reading: 5min".
// Negative values are shown as 0.
func ReadingLabel(labels Labels, minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return labels.Reading + ": " + strconv.Itoa(minutes) + "min"
}

// PostHeader renders the category badge, the reading time badge and the title.
func PostHeader(theme Theme, data PostHeaderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("section", "class", theme.Header)
		m.Element("span", data.Category, "class", theme.Badge, "data-badge", "category")
		m.Element("span", ReadingLabel(theme.Labels, data.TimeToRead), "class", theme.Badge, "data-badge", "reading")
		m.Element("h1", data.Title, "class", theme.Title)
		m.Close("section")
		return m.Err()
	})
}
