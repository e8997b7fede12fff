package blogfront

import (
	"fmt"
	"os"

	"github.com/eringen/blogfront/content"
	"github.com/eringen/blogfront/markdown"
)

// summaryWords bounds the summary derived for documents without a description.
const summaryWords = 40

// PostFromDocument converts a parsed Markdown document into a BlogPost.
// The slug falls back to the slugified file name and the summary to the
// opening words of the body.
func PostFromDocument(doc content.Document) (BlogPost, error) {
	fm := doc.Frontmatter
	slug := Slugify(fm.Slug)
	if slug == "" {
		slug = Slugify(doc.BaseName())
	}
	if slug == "" {
		return BlogPost{}, fmt.Errorf("content: %s: cannot derive a slug", doc.Path)
	}
	if fm.Date == "" {
		return BlogPost{}, fmt.Errorf("content: %s: date is required", doc.Path)
	}
	summary := fm.Description
	if summary == "" {
		summary = markdown.Summary(doc.Body, summaryWords)
	}
	title := fm.Title
	if title == "" {
		title = doc.BaseName()
	}
	return BlogPost{
		Slug:      slug,
		Title:     title,
		Date:      fm.Date,
		Category:  fm.Category,
		Tags:      FilterEmpty(fm.Tags),
		Summary:   summary,
		Content:   doc.Body,
		Cover:     fm.Cover,
		Link:      PostLink(slug),
		Published: !fm.Draft,
	}, nil
}

// ImportDocuments upserts docs into s and returns how many were saved.
func ImportDocuments(s *Store, docs []content.Document) (int, error) {
	for i, doc := range docs {
		post, err := PostFromDocument(doc)
		if err != nil {
			return i, err
		}
		if err := s.SavePost(post); err != nil {
			return i, fmt.Errorf("content: %s: save: %w", doc.Path, err)
		}
	}
	return len(docs), nil
}

// ImportContent loads every Markdown file under dir into the store and
// invalidates the cache.
func (a *App) ImportContent(dir string) (int, error) {
	docs, err := content.Load(os.DirFS(dir), ".")
	if err != nil {
		return 0, err
	}
	n, err := ImportDocuments(a.Store, docs)
	if a.Cache != nil {
		a.Cache.Invalidate()
	}
	return n, err
}
