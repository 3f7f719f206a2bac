package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
	Username  string      `gorm:"uniqueIndex;not null"`
	Password  string      `gorm:"not null"`
	Notes     []NoteModel `gorm:"foreignKey:OwnerId;constraint:OnDelete:CASCADE"`
}

func (UserModel) TableName() string {
	return "users"
}

type NoteModel struct {
	Id         uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Title      string
	Content    string    `gorm:"type:text"`
	OwnerId    uuid.UUID `gorm:"type:uuid;not null;index"`
	ShareToken *string   `gorm:"uniqueIndex"`
}

func (NoteModel) TableName() string {
	return "notes"
}

// BeforeSave stamps timestamps explicitly instead of relying on gorm's
// auto-tracking: created_at is set once, updated_at on every save.
func (m *NoteModel) BeforeSave(tx *gorm.DB) error {
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	return nil
}
