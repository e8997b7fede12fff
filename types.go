package blogfront

// BlogPost is the core content type stored in SQLite and rendered by views.
type BlogPost struct {
	Title       string
	Date        string
	Category    string
	Tags        []string
	Summary     string
	Link        string
	Slug        string
	Content     string
	Cover       string // filename under /public/uploads/, optional
	ReadingTime int    // minutes, derived from Content on save
	Published   bool
}

// Adjacent holds the published neighbours of a post. Previous is the next
// older post, Next the next newer one. Either may be nil.
type Adjacent struct {
	Previous *BlogPost
	Next     *BlogPost
}

// Image is an uploaded cover image.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}

// PostLink returns the route of the post with the given slug.
func PostLink(slug string) string {
	return "/blog/" + slug + "/"
}
