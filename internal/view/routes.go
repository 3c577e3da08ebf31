package view

import (
	"fmt"
	"net/http"
	"strings"
)

// Route names
const (
	RouteIndex         = "index"
	RouteArticleView   = "article_view"
	RouteArticleCreate = "article_create"
	RouteArticleUpdate = "article_update"
	RouteArticleDelete = "article_delete"
	RouteCommentCreate = "comment_create"
	RouteCommentView   = "comment_view"
	RouteCommentUpdate = "comment_update"
	RouteCommentDelete = "comment_delete"
)

// Route is a named page route relative to the base path
type Route struct {
	Name    string
	Methods []string
	Path    string
}

var getPost = []string{http.MethodGet, http.MethodPost}

// Routes is the page route table. Static segments come before parameters so
// "/article/add" is never captured by "/article/:pk".
var Routes = []Route{
	{Name: RouteIndex, Methods: []string{http.MethodGet}, Path: "/"},
	{Name: RouteArticleCreate, Methods: getPost, Path: "/article/add"},
	{Name: RouteArticleView, Methods: []string{http.MethodGet}, Path: "/article/:pk"},
	{Name: RouteArticleUpdate, Methods: getPost, Path: "/article/:pk/edit"},
	{Name: RouteArticleDelete, Methods: getPost, Path: "/article/:pk/delete"},
	{Name: RouteCommentCreate, Methods: getPost, Path: "/comment/add"},
	{Name: RouteCommentView, Methods: []string{http.MethodGet}, Path: "/comment/:pk"},
	{Name: RouteCommentUpdate, Methods: getPost, Path: "/comment/:pk/edit"},
	{Name: RouteCommentDelete, Methods: getPost, Path: "/comment/:pk/delete"},
}

// Params holds path parameter values by name
type Params map[string]interface{}

// URLs reverses route names into paths under a base path
type URLs struct {
	basePath string
	byName   map[string]Route
}

// NewURLs builds a reverser for the route table mounted at basePath
func NewURLs(basePath string) *URLs {
	byName := make(map[string]Route, len(Routes))
	for _, r := range Routes {
		byName[r.Name] = r
	}
	return &URLs{
		basePath: strings.TrimSuffix(basePath, "/"),
		byName:   byName,
	}
}

// BasePath returns the prefix all routes are mounted under
func (u *URLs) BasePath() string {
	return u.basePath
}

// Reverse returns the path of the named route with params substituted.
// Unknown routes, missing params and unused params are errors.
func (u *URLs) Reverse(name string, params Params) (string, error) {
	route, ok := u.byName[name]
	if !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}

	used := 0
	segments := strings.Split(route.Path, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		key := seg[1:]
		value, ok := params[key]
		if !ok {
			return "", fmt.Errorf("route %q requires parameter %q", name, key)
		}
		segments[i] = fmt.Sprint(value)
		used++
	}
	if used != len(params) {
		return "", fmt.Errorf("route %q got unexpected parameters %v", name, params)
	}

	path := strings.Join(segments, "/")
	if u.basePath == "" {
		return path, nil
	}
	if path == "/" {
		return u.basePath + "/", nil
	}
	return u.basePath + path, nil
}

// Redirect builds a 302 response to the named route
func (u *URLs) Redirect(name string, params Params) (Response, error) {
	location, err := u.Reverse(name, params)
	if err != nil {
		return Response{}, err
	}
	return Response{Status: http.StatusFound, Location: location}, nil
}

// URL is the template helper form of Reverse: url "article_view" "pk" 3
func (u *URLs) URL(name string, pairs ...interface{}) (string, error) {
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("url %q: odd number of parameter arguments", name)
	}
	params := make(Params, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return "", fmt.Errorf("url %q: parameter name must be a string, got %T", name, pairs[i])
		}
		params[key] = pairs[i+1]
	}
	return u.Reverse(name, params)
}
