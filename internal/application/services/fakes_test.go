package services

import (
	"sync"

	"github.com/google/uuid"
	"github.com/soumya9832/notes-backend/internal/domain/entities"
	"github.com/soumya9832/notes-backend/internal/domain/repositories"
)

// In-memory stand-ins for the gorm repositories. They copy entities on
// the way in and out so tests observe persisted state, not shared
// pointers.

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]entities.User)}
}

func (r *fakeUserRepository) Create(user *entities.ValidatedUser) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userEntity := user.GetUser()
	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}
	for _, existing := range r.users {
		if existing.Username == userEntity.Username {
			return nil, repositories.ErrDuplicateUsername
		}
	}

	r.users[userEntity.Id] = *userEntity
	stored := r.users[userEntity.Id]
	return &stored, nil
}

func (r *fakeUserRepository) FindById(id uuid.UUID) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *fakeUserRepository) FindByUsername(username string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			stored := user
			return &stored, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	return nil
}

type fakeNoteRepository struct {
	mu    sync.Mutex
	notes map[uuid.UUID]entities.Note
	order []uuid.UUID

	// saveErrs is drained one error per Save call, letting tests force
	// share-token conflicts.
	saveErrs []error
}

func newFakeNoteRepository() *fakeNoteRepository {
	return &fakeNoteRepository{notes: make(map[uuid.UUID]entities.Note)}
}

func (r *fakeNoteRepository) Save(note *entities.ValidatedNote) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.saveErrs) > 0 {
		err := r.saveErrs[0]
		r.saveErrs = r.saveErrs[1:]
		if err != nil {
			return nil, err
		}
	}

	noteEntity := note.GetNote()
	if noteEntity.ShareToken != nil {
		for id, existing := range r.notes {
			if id != noteEntity.Id && existing.ShareToken != nil && *existing.ShareToken == *noteEntity.ShareToken {
				return nil, repositories.ErrDuplicateShareToken
			}
		}
	}

	if _, ok := r.notes[noteEntity.Id]; !ok {
		r.order = append(r.order, noteEntity.Id)
	}
	r.notes[noteEntity.Id] = *noteEntity
	stored := r.notes[noteEntity.Id]
	return &stored, nil
}

func (r *fakeNoteRepository) FindById(id uuid.UUID) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.notes[id]
	if !ok {
		return nil, nil
	}
	return &note, nil
}

func (r *fakeNoteRepository) FindByOwner(ownerId uuid.UUID) ([]*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var notes []*entities.Note
	for _, id := range r.order {
		note, ok := r.notes[id]
		if ok && note.OwnerId == ownerId {
			stored := note
			notes = append(notes, &stored)
		}
	}
	return notes, nil
}

func (r *fakeNoteRepository) FindByShareToken(token string) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, note := range r.notes {
		if note.ShareToken != nil && *note.ShareToken == token {
			stored := note
			return &stored, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.notes, id)
	return nil
}
