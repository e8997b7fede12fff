package views

import (
	"context"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/blogfront"
	"github.com/eringen/blogfront/internal/markup"
)

func (v *Views) adminPage(title string, body templ.Component) templ.Component {
	return v.Layout(PageMeta{Title: title}, "/admin/", body)
}

func csrfField(m *markup.Writer, token string) {
	m.Open("input", "type", "hidden", "name", "_csrf", "value", token)
}

// deleteButton posts to action with a DELETE method override.
func deleteButton(m *markup.Writer, action, token string) {
	m.Open("form", "method", "post", "action", action, "class", "admin__delete")
	csrfField(m, token)
	m.Open("input", "type", "hidden", "name", "_method", "value", "DELETE")
	m.Element("button", "Delete", "type", "submit")
	m.Close("form")
}

// AdminLogin is the password form.
func (v *Views) AdminLogin(showError bool, csrfToken string) templ.Component {
	return v.adminPage("Admin", component(func(ctx context.Context, m *markup.Writer) {
		m.Element("h1", "Admin")
		if showError {
			m.Element("p", "Wrong password.", "class", "admin__error", "role", "alert")
		}
		m.Open("form", "method", "post", "action", "/admin/login/", "class", "admin__login")
		csrfField(m, csrfToken)
		m.Element("label", "Password", "for", "password")
		m.Open("input", "type", "password", "id", "password", "name", "password", "autocomplete", "current-password")
		m.Element("button", "Log in", "type", "submit")
		m.Close("form")
	}))
}

// AdminDashboard lists every post next to an empty editor.
func (v *Views) AdminDashboard(posts []blogfront.BlogPost, message string, csrfToken string) templ.Component {
	return v.adminPage("Admin", component(func(ctx context.Context, m *markup.Writer) {
		m.Element("h1", "Posts")
		if message != "" {
			m.Element("p", message, "class", "admin__message", "role", "status")
		}
		m.Open("nav", "class", "admin__links")
		m.Element("a", "Images", "href", "/admin/images/")
		m.Open("form", "method", "post", "action", "/admin/logout/")
		csrfField(m, csrfToken)
		m.Element("button", "Log out", "type", "submit")
		m.Close("form")
		m.Close("nav")

		m.Open("table", "class", "admin__posts")
		m.Open("thead")
		m.Open("tr")
		for _, h := range []string{"Title", "Date", "Category", "Status", ""} {
			m.Element("th", h)
		}
		m.Close("tr")
		m.Close("thead")
		m.Open("tbody")
		for _, p := range posts {
			status := "draft"
			if p.Published {
				status = "published"
			}
			m.Open("tr", "data-slug", p.Slug)
			m.Open("td")
			m.Element("a", p.Title, "href", "/admin/post/"+url.PathEscape(p.Slug)+"/")
			m.Close("td")
			m.Element("td", p.Date)
			m.Element("td", p.Category)
			m.Element("td", status)
			m.Open("td")
			m.Element("a", "view", "href", markup.Href(p.Link))
			deleteButton(m, "/admin/post/"+url.PathEscape(p.Slug)+"/", csrfToken)
			m.Close("td")
			m.Close("tr")
		}
		m.Close("tbody")
		m.Close("table")

		m.Element("h2", "New post")
		v.postForm(m, blogfront.BlogPost{Published: true}, csrfToken)
	}))
}

// AdminFormPartial is the editor for an existing post.
func (v *Views) AdminFormPartial(post blogfront.BlogPost, csrfToken string) templ.Component {
	return v.adminPage(post.Title, component(func(ctx context.Context, m *markup.Writer) {
		m.Element("h1", "Edit post")
		v.postForm(m, post, csrfToken)
	}))
}

func (v *Views) postForm(m *markup.Writer, p blogfront.BlogPost, csrfToken string) {
	m.Open("form", "method", "post", "action", "/admin/save/", "class", "admin__form")
	csrfField(m, csrfToken)
	field := func(name, label, value string) {
		m.Element("label", label, "for", name)
		m.Open("input", "type", "text", "id", name, "name", name, "value", value)
	}
	field("title", "Title", p.Title)
	field("slug", "Slug", p.Slug)
	field("date", "Date (YYYY-MM-DD)", p.Date)
	field("category", "Category", p.Category)
	field("tags", "Tags", blogfront.JoinTags(p.Tags))
	field("cover", "Cover image", p.Cover)
	m.Element("label", "Summary", "for", "summary")
	m.Element("textarea", p.Summary, "id", "summary", "name", "summary", "rows", "3")
	m.Element("label", "Content (Markdown)", "for", "content")
	m.Element("textarea", p.Content, "id", "content", "name", "content", "rows", "20")
	m.Open("label")
	if p.Published {
		m.Open("input", "type", "checkbox", "name", "published", "value", "1", "checked", "checked")
	} else {
		m.Open("input", "type", "checkbox", "name", "published", "value", "1")
	}
	m.Text(" Published")
	m.Close("label")
	m.Element("button", "Save", "type", "submit")
	m.Close("form")
}

// AdminImages lists uploaded covers with an upload form.
func (v *Views) AdminImages(images []blogfront.Image, csrfToken string) templ.Component {
	return v.adminPage("Images", component(func(ctx context.Context, m *markup.Writer) {
		m.Element("h1", "Images")
		m.Open("form", "method", "post", "action", "/admin/images/upload/", "enctype", "multipart/form-data")
		csrfField(m, csrfToken)
		m.Open("input", "type", "file", "name", "image", "accept", "image/*")
		m.Element("button", "Upload", "type", "submit")
		m.Close("form")

		m.Open("ul", "class", "admin__images")
		for _, img := range images {
			m.Open("li", "data-filename", img.Filename)
			m.Open("img", "src", blogfront.CoverURL("", img.Filename), "alt", img.OriginalName, "width", "160", "loading", "lazy")
			m.Element("code", img.Filename)
			m.Element("span", strconv.Itoa(img.Width)+"×"+strconv.Itoa(img.Height))
			deleteButton(m, "/admin/images/"+url.PathEscape(img.Filename)+"/", csrfToken)
			m.Close("li")
		}
		m.Close("ul")
	}))
}
