package domain

// Article represents a published piece of content
type Article struct {
	BaseModel
	Title      string    `gorm:"type:varchar(200);not null" json:"title"`
	Author     string    `gorm:"type:varchar(40);not null" json:"author"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	CategoryID *uint     `gorm:"index:idx_articles_category_id" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Comments   []Comment `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Article
func (Article) TableName() string {
	return "articles"
}

// CategoryName returns the category name or an empty string when unset
func (a *Article) CategoryName() string {
	if a.Category == nil {
		return ""
	}
	return a.Category.Name
}
