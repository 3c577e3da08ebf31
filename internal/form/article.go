package form

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"

	"article-cms/internal/domain"
)

// CategoryLookup resolves category references submitted with an article
type CategoryLookup interface {
	CategoryExists(ctx context.Context, id uint) (bool, error)
}

// ArticleInput is the raw article form as submitted
type ArticleInput struct {
	Title    string `form:"title" binding:"required,max=200"`
	Author   string `form:"author" binding:"required,max=40"`
	Text     string `form:"text" binding:"required,max=3000"`
	Category string `form:"category" binding:"omitempty,numeric"`
}

// ArticleData is a validated article ready to be stored
type ArticleData struct {
	Title      string
	Author     string
	Text       string
	CategoryID *uint
}

// ArticleState is what the article form template renders: the field values
// plus any messages from the last validation
type ArticleState struct {
	Title    string
	Author   string
	Text     string
	Category string
	Errors   Errors
}

// ParseArticle reads an ArticleInput from form values. Surrounding whitespace is stripped.
func ParseArticle(values url.Values) (ArticleInput, error) {
	var in ArticleInput
	if err := binding.MapFormWithTag(&in, values, "form"); err != nil {
		return in, err
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Text = strings.TrimSpace(in.Text)
	in.Category = strings.TrimSpace(in.Category)
	return in, nil
}

// ValidateArticle checks in against the article schema. It returns either the
// cleaned data or the field errors; a non-nil error means a lookup failed.
func ValidateArticle(ctx context.Context, in ArticleInput, categories CategoryLookup) (*ArticleData, Errors, error) {
	errs := Errors{}
	if err := binding.Validator.ValidateStruct(&in); err != nil {
		var ferr error
		if errs, ferr = fromValidation(&in, err); ferr != nil {
			return nil, nil, ferr
		}
	}

	var categoryID *uint
	if in.Category != "" && !errs.Has("category") {
		id, ok := parseID(in.Category)
		if !ok {
			errs.Add("category", MsgInvalidChoice)
		} else {
			exists, err := categories.CategoryExists(ctx, id)
			if err != nil {
				return nil, nil, err
			}
			if !exists {
				errs.Add("category", MsgInvalidChoice)
			} else {
				categoryID = &id
			}
		}
	}

	if !errs.Empty() {
		return nil, errs, nil
	}

	return &ArticleData{
		Title:      in.Title,
		Author:     in.Author,
		Text:       in.Text,
		CategoryID: categoryID,
	}, nil, nil
}

// NewArticleState echoes submitted values back with their errors
func NewArticleState(in ArticleInput, errs Errors) ArticleState {
	return ArticleState{
		Title:    in.Title,
		Author:   in.Author,
		Text:     in.Text,
		Category: in.Category,
		Errors:   errs,
	}
}

// ArticleStateFrom pre-fills the form from a stored article
func ArticleStateFrom(a *domain.Article) ArticleState {
	state := ArticleState{
		Title:  a.Title,
		Author: a.Author,
		Text:   a.Text,
	}
	if a.CategoryID != nil {
		state.Category = strconv.FormatUint(uint64(*a.CategoryID), 10)
	}
	return state
}

// parseID accepts positive decimal integers only
func parseID(s string) (uint, bool) {
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// ParseID parses a route or form identifier. Zero, negative and non-numeric
// values are rejected.
func ParseID(s string) (uint, bool) {
	return parseID(strings.TrimSpace(s))
}
