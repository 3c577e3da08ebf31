package domain

import "time"

// BaseModel holds the columns shared by every persisted entity.
// ID is assigned by the store on insert and never changes afterwards.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
