package views

import "strings"

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	JsonLD      string
}

// text holds page copy that is not part of the component labels.
type text struct {
	AllPosts      string
	Tags          string
	ProjectsTitle string
	ProjectsEmpty string
	AboutTitle    string
	NoPosts       string
	NotFoundTitle string
	NotFoundBody  string
	ErrorTitle    string
	ErrorBody     string
	BackHome      string
}

func textFor(locale string) text {
	if strings.HasPrefix(strings.ToLower(locale), "pt") {
		return text{
			AllPosts:      "Todos os posts",
			Tags:          "Tags",
			ProjectsTitle: "Projetos",
			ProjectsEmpty: "Nenhum projeto publicado ainda.",
			AboutTitle:    "Sobre",
			NoPosts:       "Nenhum post encontrado.",
			NotFoundTitle: "Página não encontrada",
			NotFoundBody:  "O endereço que você procura não existe.",
			ErrorTitle:    "Algo deu errado",
			ErrorBody:     "Tente novamente em instantes.",
			BackHome:      "Voltar ao início",
		}
	}
	return text{
		AllPosts:      "All posts",
		Tags:          "Tags",
		ProjectsTitle: "Projects",
		ProjectsEmpty: "No projects published yet.",
		AboutTitle:    "About",
		NoPosts:       "No posts found.",
		NotFoundTitle: "Page not found",
		NotFoundBody:  "The page you are looking for does not exist.",
		ErrorTitle:    "Something went wrong",
		ErrorBody:     "Please try again in a moment.",
		BackHome:      "Back to home",
	}
}
