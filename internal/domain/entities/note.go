package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Title      string
	Content    string
	OwnerId    uuid.UUID
	ShareToken *string
}

func NewNote(ownerId uuid.UUID, title, content string) *Note {
	now := time.Now()
	return &Note{
		Id:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Title:     title,
		Content:   content,
		OwnerId:   ownerId,
	}
}

func (n *Note) validate() error {
	if n.OwnerId == uuid.Nil {
		return errors.New("note must have an owner")
	}
	if n.CreatedAt.After(n.UpdatedAt) {
		return errors.New("created_at must not be after updated_at")
	}
	return nil
}

// IsOwnedBy reports whether userId is the note's single writable owner.
func (n *Note) IsOwnedBy(userId uuid.UUID) bool {
	return n.OwnerId == userId
}

func (n *Note) UpdateContent(title, content string) {
	n.Title = title
	n.Content = content
	n.UpdatedAt = time.Now()
}

// EnableSharing installs a fresh share token, replacing any prior one.
// uuid.NewString draws from crypto/rand, so the token is unguessable.
func (n *Note) EnableSharing() string {
	token := uuid.NewString()
	n.ShareToken = &token
	n.UpdatedAt = time.Now()
	return token
}

func (n *Note) DisableSharing() {
	n.ShareToken = nil
	n.UpdatedAt = time.Now()
}

func (n *Note) IsShared() bool {
	return n.ShareToken != nil
}
