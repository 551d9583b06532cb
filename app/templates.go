package main

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/blogservice"
	"github.com/sushihentaime/blogfront/internal/commentservice"
	"github.com/sushihentaime/blogfront/internal/store"
)

//go:embed templates
var templateFS embed.FS

// templateData is everything a page template can read.
type templateData struct {
	CurrentYear     int
	CurrentPath     string
	User            *apiclient.User
	IsAuthenticated bool
	Notices         []store.Notice

	Status  int
	Message string

	Form        map[string]string
	FieldErrors map[string]string
	Categories  []string

	Query string
	Blogs []apiclient.Blog
	Blog  *apiclient.Blog
	Liked bool

	PostID        string
	Comments      []commentservice.CommentView
	CommentsError string

	Stats *blogservice.Stats
}

type page struct {
	file   string
	layout string
}

var pages = map[string]page{
	"home":                  {"home.html", "public"},
	"blogs":                 {"blogs.html", "public"},
	"about":                 {"about.html", "public"},
	"search":                {"search.html", "public"},
	"blog":                  {"blog.html", "public"},
	"blog_not_found":        {"blog_not_found.html", "public"},
	"login":                 {"login.html", "bare"},
	"signup":                {"signup.html", "bare"},
	"write_blog":            {"create_blog.html", "bare"},
	"profile":               {"profile.html", "bare"},
	"dashboard":             {"dashboard.html", "dashboard"},
	"dashboard_write_blog":  {"create_blog.html", "dashboard"},
	"dashboard_update_blog": {"update_blog.html", "dashboard"},
	"your_blog":             {"your_blog.html", "dashboard"},
	"comments":              {"comments.html", "dashboard"},
	"dashboard_profile":     {"profile.html", "dashboard"},
	"error":                 {"error.html", "bare"},
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

func humanDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format("02 Jan 2006")
}

// excerpt returns the text of an HTML fragment cut to n runes.
func excerpt(html string, n int) string {
	text := strings.Join(strings.Fields(tagPattern.ReplaceAllString(html, " ")), " ")

	runes := []rune(text)
	if len(runes) <= n {
		return text
	}

	return strings.TrimSpace(string(runes[:n])) + "…"
}

// categoryOptions lists the offered categories plus current when the blog has one outside them.
func categoryOptions(categories []string, current string) []string {
	if current == "" || slices.Contains(categories, current) {
		return categories
	}

	return append(slices.Clone(categories), current)
}

var functions = template.FuncMap{
	"humanDate": humanDate,
	"excerpt":   excerpt,
	"join":      strings.Join,
	"sanitize": func(html string) template.HTML {
		return template.HTML(blogservice.SanitizeHTML(html))
	},
	"categoryOptions": categoryOptions,
	"likedBy": func(b apiclient.Blog, userID string) bool {
		return b.LikedBy(userID)
	},
	"initial": func(u *apiclient.User) string {
		if u == nil {
			return "?"
		}
		name := u.FullName()
		if name == "" {
			return "?"
		}
		return strings.ToUpper(string([]rune(name)[:1]))
	},
}

func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	for name, p := range pages {
		ts, err := template.New(name).Funcs(functions).ParseFS(templateFS,
			"templates/layouts/*.html",
			"templates/partials/*.html",
			"templates/pages/"+p.file,
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}

		cache[name] = ts
	}

	return cache, nil
}

// renderPage executes a page into a buffer first so a template error never leaves a half written response.
func (app *application) renderPage(w http.ResponseWriter, status int, name string, data *templateData) error {
	ts, ok := app.templates[name]
	if !ok {
		return fmt.Errorf("the template %s does not exist", name)
	}

	if data.CurrentYear == 0 {
		data.CurrentYear = time.Now().Year()
	}

	buf := new(bytes.Buffer)
	err := ts.ExecuteTemplate(buf, pages[name].layout, data)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)

	return nil
}

// render fills the session parts of data and renders the page. Pending notices are consumed.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, name string, data *templateData) {
	st := app.contextGetState(r)

	data.CurrentPath = r.URL.Path
	data.User = st.User()
	data.IsAuthenticated = data.User != nil
	data.Notices = st.PopNotices()

	err := app.renderPage(w, status, name, data)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
