// Package content loads Markdown documents with YAML frontmatter from disk.
//
// A document looks like:
//
//	---
//	title: Hello
//	date: 2024-01-15
//	category: Tech
//	tags: [go, web]
//	---
//	Body in Markdown.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/araddon/dateparse"
	yaml "gopkg.in/yaml.v3"
)

// ErrNoFrontmatter is returned for files that do not start with a
// frontmatter block.
var ErrNoFrontmatter = errors.New("missing frontmatter")

// Frontmatter is the metadata block at the top of a document.
type Frontmatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"description"`
	Slug        string   `yaml:"slug"`
	Cover       string   `yaml:"cover"`
	Draft       bool     `yaml:"draft"`
}

// Document is a parsed Markdown file.
type Document struct {
	Path        string
	Frontmatter Frontmatter
	Body        string
}

// Parse splits raw into frontmatter and body.
func Parse(raw string) (Frontmatter, string, error) {
	raw = strings.TrimPrefix(raw, "\ufeff")
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	if !strings.HasPrefix(raw, "---\n") {
		return Frontmatter{}, "", ErrNoFrontmatter
	}
	splits := strings.SplitN(raw[len("---\n"):], "\n---", 2)
	if len(splits) != 2 {
		return Frontmatter{}, "", ErrNoFrontmatter
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(splits[0]), &fm); err != nil {
		return Frontmatter{}, "", err
	}
	if fm.Date != "" {
		d, err := normalizeDate(fm.Date)
		if err != nil {
			return Frontmatter{}, "", err
		}
		fm.Date = d
	}

	body := strings.TrimPrefix(splits[1], "\n")
	return fm, strings.TrimSpace(body) + "\n", nil
}

// normalizeDate accepts any unambiguous date or timestamp and returns
// YYYY-MM-DD.
func normalizeDate(s string) (string, error) {
	t, err := dateparse.ParseStrict(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.Format("2006-01-02"), nil
}

// Load parses every *.md file below root in fsys, sorted by path.
func Load(fsys fs.FS, root string) ([]Document, error) {
	var docs []Document
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(p), ".md") {
			return nil
		}
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("content: %s: %w", p, err)
		}
		fm, body, err := Parse(string(raw))
		if err != nil {
			return fmt.Errorf("content: %s: %w", p, err)
		}
		docs = append(docs, Document{Path: p, Frontmatter: fm, Body: body})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

// BaseName is the file name of the document without directory or extension.
// Files named index.md take the name of their directory.
func (d Document) BaseName() string {
	name := strings.TrimSuffix(path.Base(d.Path), path.Ext(d.Path))
	if strings.EqualFold(name, "index") {
		if dir := path.Base(path.Dir(d.Path)); dir != "." && dir != "/" {
			return dir
		}
	}
	return name
}
