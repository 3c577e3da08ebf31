package form

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"

	"article-cms/internal/domain"
)

// ArticleLookup resolves the article a comment refers to
type ArticleLookup interface {
	ArticleExists(ctx context.Context, id uint) (bool, error)
}

// CommentInput is the raw comment form as submitted
type CommentInput struct {
	Author  string `form:"author" binding:"required,max=40"`
	Text    string `form:"text" binding:"required,max=400"`
	Article string `form:"article" binding:"required,numeric"`
}

// CommentData is a validated comment ready to be stored
type CommentData struct {
	Author    string
	Text      string
	ArticleID uint
}

// CommentState is what the comment form template renders
type CommentState struct {
	Author  string
	Text    string
	Article string
	Errors  Errors
}

// ParseComment reads a CommentInput from form values. Surrounding whitespace is stripped.
func ParseComment(values url.Values) (CommentInput, error) {
	var in CommentInput
	if err := binding.MapFormWithTag(&in, values, "form"); err != nil {
		return in, err
	}
	in.Author = strings.TrimSpace(in.Author)
	in.Text = strings.TrimSpace(in.Text)
	in.Article = strings.TrimSpace(in.Article)
	return in, nil
}

// ValidateComment checks in against the comment schema. The referenced article
// must exist at validation time.
func ValidateComment(ctx context.Context, in CommentInput, articles ArticleLookup) (*CommentData, Errors, error) {
	errs := Errors{}
	if err := binding.Validator.ValidateStruct(&in); err != nil {
		var ferr error
		if errs, ferr = fromValidation(&in, err); ferr != nil {
			return nil, nil, ferr
		}
	}

	var articleID uint
	if !errs.Has("article") {
		id, ok := parseID(in.Article)
		if !ok {
			errs.Add("article", MsgInvalidChoice)
		} else {
			exists, err := articles.ArticleExists(ctx, id)
			if err != nil {
				return nil, nil, err
			}
			if !exists {
				errs.Add("article", MsgInvalidChoice)
			}
			articleID = id
		}
	}

	if !errs.Empty() {
		return nil, errs, nil
	}

	return &CommentData{
		Author:    in.Author,
		Text:      in.Text,
		ArticleID: articleID,
	}, nil, nil
}

// NewCommentState echoes submitted values back with their errors
func NewCommentState(in CommentInput, errs Errors) CommentState {
	return CommentState{
		Author:  in.Author,
		Text:    in.Text,
		Article: in.Article,
		Errors:  errs,
	}
}

// CommentStateFrom pre-fills the form from a stored comment
func CommentStateFrom(c *domain.Comment) CommentState {
	return CommentState{
		Author:  c.Author,
		Text:    c.Text,
		Article: strconv.FormatUint(uint64(c.ArticleID), 10),
	}
}
