package view

import (
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Response is either a rendered template or a redirect
type Response struct {
	Status   int
	Template string
	Context  gin.H
	Location string
}

// IsRedirect reports whether the response is a redirect
func (r Response) IsRedirect() bool {
	return r.Location != ""
}

// WithStatus returns a copy of r with a different status code
func (r Response) WithStatus(status int) Response {
	r.Status = status
	return r
}

// Send writes the response to the client
func (r Response) Send(c *gin.Context) {
	if r.IsRedirect() {
		c.Redirect(r.Status, r.Location)
		return
	}
	c.HTML(r.Status, r.Template, r.Context)
}

// Renderer renders a named template with a context
type Renderer interface {
	Render(name string, context gin.H) Response
}

// Router redirects to a named route with path parameters
type Router interface {
	Redirect(route string, params Params) (Response, error)
}

// TemplateRenderer renders templates registered on the gin engine
type TemplateRenderer struct{}

// Render returns a 200 response for the named template
func (TemplateRenderer) Render(name string, context gin.H) Response {
	if context == nil {
		context = gin.H{}
	}
	return Response{Status: http.StatusOK, Template: name, Context: context}
}

// LoadTemplates parses every page template in fsys and wires the url helper to urls
func LoadTemplates(fsys fs.FS, urls *URLs) (*template.Template, error) {
	funcs := template.FuncMap{
		"url": urls.URL,
		"idstr": func(id uint) string {
			return strconv.FormatUint(uint64(id), 10)
		},
	}
	return template.New("").Funcs(funcs).ParseFS(fsys, "templates/*.html")
}
