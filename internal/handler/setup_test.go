package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"article-cms/internal/metrics"
	"article-cms/internal/service"
	"article-cms/internal/view"
	"article-cms/web"
)

// recordingRenderer remembers the last template it was asked to render
type recordingRenderer struct {
	inner    view.Renderer
	template string
	context  gin.H
}

func (r *recordingRenderer) Render(name string, context gin.H) view.Response {
	r.template = name
	r.context = context
	return r.inner.Render(name, context)
}

type testApp struct {
	engine   *gin.Engine
	renderer *recordingRenderer
}

// setupTestApp wires the page handlers onto an engine with the real templates
func setupTestApp(t *testing.T, articles service.ArticleService, comments service.CommentService, policy service.DeletePolicy, m *metrics.Metrics) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	urls := view.NewURLs("")
	tmpl, err := view.LoadTemplates(web.FS, urls)
	require.NoError(t, err)

	renderer := &recordingRenderer{inner: view.TemplateRenderer{}}
	logger := zap.NewNop()

	engine := gin.New()
	engine.SetHTMLTemplate(tmpl)

	pages := Pages(
		NewArticleHandler(articles, renderer, urls, logger),
		NewCommentHandler(comments, policy, renderer, urls, m, logger),
	)
	for _, route := range view.Routes {
		h := pages[route.Name]
		if h.GET != nil {
			engine.GET(route.Path, h.GET)
		}
		if h.POST != nil {
			engine.POST(route.Path, h.POST)
		}
	}

	return &testApp{engine: engine, renderer: renderer}
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (a *testApp) post(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}
