package metrics

// IncrementArticleCreated increments article creation counter
func (m *Metrics) IncrementArticleCreated() {
	m.safeExecute("IncrementArticleCreated", func() {
		m.ArticleCreatedTotal.Inc()
	})
}

// IncrementCommentCreated increments comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// IncrementCommentDeleteFailure counts a comment deletion failure that was discarded
func (m *Metrics) IncrementCommentDeleteFailure() {
	m.safeExecute("IncrementCommentDeleteFailure", func() {
		m.CommentDeleteFailuresTotal.Inc()
	})
}

// AddDanglingCommentsRemoved adds to the swept comments counter
func (m *Metrics) AddDanglingCommentsRemoved(n int64) {
	if n <= 0 {
		return
	}
	m.safeExecute("AddDanglingCommentsRemoved", func() {
		m.DanglingCommentsRemoved.Add(float64(n))
	})
}

// SetArticlesTotal sets total articles gauge
func (m *Metrics) SetArticlesTotal(count int64) {
	m.safeExecute("SetArticlesTotal", func() {
		m.ArticlesTotal.Set(float64(count))
	})
}

// SetCommentsTotal sets total comments gauge
func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}
