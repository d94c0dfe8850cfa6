// Package render turns loaded catalog records into HTML fragments for the
// front-end. Rendering has no side effects; the only configuration is the
// base URL image paths are built from.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/pageza/dippingsauce/backend/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultImageBaseURL is where recipe images are served from when no
// other base is configured
const DefaultImageBaseURL = "/static/img"

// NotFoundMessage is shown in the error fragment for a missing recipe
const NotFoundMessage = "There was a problem getting this recipe, or this recipe does not exist."

var (
	// whitespace as unicode.IsSpace sees it, plus the ASCII separator controls
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s\v\x{1c}-\x{1f}\x{85}\p{Z}-]`)
	slugSeps     = regexp.MustCompile(`[\s\v\x{1c}-\x{1f}\x{85}\p{Z}-]+`)

	md = goldmark.New(goldmark.WithExtensions(extension.Table))
)

// Slug lower-cases s, drops everything but letters, digits, whitespace and
// hyphens, and joins the remaining words with single hyphens
func Slug(s string) string {
	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = slugSeps.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Stars renders one star icon per rating point. A nil rating renders
// nothing.
func Stars(rating *int) template.HTML {
	if rating == nil || *rating <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < *rating; i++ {
		b.WriteString(`<span class="icon"><i class="fa-solid fa-star" style="color: gold;"></i></span>`)
	}
	return template.HTML(b.String())
}

// Markdown converts s to HTML with table support. Raw HTML in the source
// is not passed through.
func Markdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(buf.String())
}

func markdownPtr(s *string) template.HTML {
	if s == nil {
		return ""
	}
	return Markdown(*s)
}

func number(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

type option struct {
	Value string
	Label string
}

// Renderer renders fragments with image paths under a fixed base URL
type Renderer struct {
	imageBaseURL string
	templates    *template.Template
}

// New creates a Renderer. An empty imageBaseURL selects
// DefaultImageBaseURL.
func New(imageBaseURL string) *Renderer {
	base := strings.TrimSuffix(imageBaseURL, "/")
	if base == "" {
		base = DefaultImageBaseURL
	}

	r := &Renderer{imageBaseURL: base}
	r.templates = template.Must(template.New("render").Funcs(template.FuncMap{
		"imageURL":      r.ImageURL,
		"fallbackImage": func() string { return base + "/image-not-found.jpg" },
		"markdown":      markdownPtr,
		"stars":         Stars,
		"number":        number,
		"capitalize":    capitalize,
	}).ParseFS(templateFS, "templates/*.html"))
	return r
}

// ImageURL returns the image path derived from name
func (r *Renderer) ImageURL(name string) string {
	return r.imageBaseURL + "/" + Slug(name) + ".jpg"
}

// TagOptions renders a select option list of tags
func (r *Renderer) TagOptions(tags []models.Tag) (string, error) {
	opts := make([]option, 0, len(tags))
	for _, t := range tags {
		opts = append(opts, option{Value: strconv.FormatUint(uint64(t.ID), 10), Label: t.Name})
	}
	return r.execute("options", opts)
}

// CuisineOptions renders a select option list of cuisines
func (r *Renderer) CuisineOptions(cuisines []models.Cuisine) (string, error) {
	opts := make([]option, 0, len(cuisines))
	for _, c := range cuisines {
		opts = append(opts, option{Value: strconv.FormatUint(uint64(c.ID), 10), Label: c.Name})
	}
	return r.execute("options", opts)
}

// RecipeCards renders one card per recipe, or an empty string for none
func (r *Renderer) RecipeCards(recipes []models.Recipe) (string, error) {
	if len(recipes) == 0 {
		return "", nil
	}
	return r.execute("recipe_cards", recipes)
}

// ReviewCards renders one card per review, or an empty string for none
func (r *Renderer) ReviewCards(reviews []models.Review) (string, error) {
	if len(reviews) == 0 {
		return "", nil
	}
	return r.execute("review_cards", reviews)
}

// RecipeDetail renders the full view of a single recipe
func (r *Renderer) RecipeDetail(recipe *models.Recipe) (string, error) {
	return r.execute("recipe_detail", recipe)
}

// ErrorFragment renders message as an error notice
func (r *Renderer) ErrorFragment(message string) (string, error) {
	return r.execute("error", message)
}

func (r *Renderer) execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// PageTitle is the page title for a recipe detail view
func PageTitle(recipe *models.Recipe) string {
	return recipe.Name
}

// PageDescription summarizes a recipe for link previews, e.g.
// "Dinner recipe: 4 servings, 520 calories, 35g protein"
func PageDescription(recipe *models.Recipe) string {
	var parts []string
	if recipe.Servings != nil {
		parts = append(parts, fmt.Sprintf("%d servings", *recipe.Servings))
	}
	if recipe.Calories != nil {
		parts = append(parts, fmt.Sprintf("%d calories", *recipe.Calories))
	}
	if recipe.Protein != nil {
		parts = append(parts, fmt.Sprintf("%dg protein", *recipe.Protein))
	}

	prefix := "Recipe"
	if recipe.Tag != nil && recipe.Tag.Name != "" {
		prefix = capitalize(recipe.Tag.Name) + " recipe"
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ": " + strings.Join(parts, ", ")
}
