package common

import (
	"time"

	"github.com/google/uuid"
)

type NoteResult struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Shared    bool      `json:"shared"`
}

// SharedNoteResult is the public projection of a shared note. It must
// never carry the owner or any field beyond these five.
type SharedNoteResult struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
