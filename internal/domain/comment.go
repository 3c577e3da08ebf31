package domain

// Comment represents a comment on an article
type Comment struct {
	BaseModel
	Author    string   `gorm:"type:varchar(40);not null" json:"author"`
	Text      string   `gorm:"type:varchar(400);not null" json:"text"`
	ArticleID uint     `gorm:"not null;index:idx_comments_article_id" json:"article_id"`
	Article   *Article `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"article,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
