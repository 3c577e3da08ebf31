package domain

// Category is a lookup entity that articles may reference
type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_name" json:"name"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
