package template

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	stdtemplate "html/template"

	humanize "github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	blackfriday "gopkg.in/russross/blackfriday.v2"
)

type Template struct {
	templates *stdtemplate.Template
	sanitiser *bluemonday.Policy
}

func NewTemplate(views fs.FS) *Template {
	funcMap := stdtemplate.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"last": func(a []int) int {
			if len(a) == 0 {
				return -1
			}
			return a[len(a)-1]
		},
		"jsescape":  stdtemplate.JSEscapeString,
		"humantime": humanize.Time,
		"humannumber": func(n int) string {
			return humanize.Comma(int64(n))
		},
		"isTimeBeforeNow": func(t time.Time) bool {
			return t.Before(time.Now())
		},
		"firstName": func(s string) string {
			parts := strings.Split(s, " ")
			return parts[0]
		},
		"stringTitle": func(s string) string {
			return strings.Title(s)
		},
		"lower": strings.ToLower,
		"mul": func(a int, b int) int {
			return a * b
		},
		"join": func(items []string, sep string) string {
			return strings.Join(items, sep)
		},
	}
	return &Template{
		templates: stdtemplate.Must(stdtemplate.New("stdtmpl").Funcs(funcMap).ParseFS(views, "static/views/*.html")),
		sanitiser: bluemonday.UGCPolicy(),
	}
}

func (t *Template) JSEscapeString(s string) string {
	return stdtemplate.JSEscapeString(s)
}

func (t *Template) Render(w http.ResponseWriter, status int, name string, data interface{}) error {
	w.WriteHeader(status)
	return t.templates.ExecuteTemplate(w, name, data)
}

func (t *Template) StringToHTML(s string) stdtemplate.HTML {
	return stdtemplate.HTML(s)
}

// MarkdownToHTML renders user-supplied markdown and strips anything
// outside the UGC allowlist.
func (t *Template) MarkdownToHTML(s string) stdtemplate.HTML {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink |
			blackfriday.NofollowLinks |
			blackfriday.NoreferrerLinks |
			blackfriday.HrefTargetBlank,
	})
	rendered := blackfriday.Run([]byte(s), blackfriday.WithRenderer(renderer))
	return stdtemplate.HTML(t.sanitiser.SanitizeBytes(rendered))
}
