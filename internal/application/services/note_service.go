package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/soumya9832/notes-backend/internal/application/command"
	"github.com/soumya9832/notes-backend/internal/application/common"
	"github.com/soumya9832/notes-backend/internal/application/interfaces"
	"github.com/soumya9832/notes-backend/internal/application/mapper"
	"github.com/soumya9832/notes-backend/internal/application/query"
	"github.com/soumya9832/notes-backend/internal/domain/entities"
	"github.com/soumya9832/notes-backend/internal/domain/repositories"
	"github.com/soumya9832/notes-backend/internal/messaging"
)

const (
	shareUrlPrefix = "/api/notes/share/"

	// Token collisions are a store invariant violation, not a user
	// error. Regenerate a bounded number of times before giving up.
	shareTokenAttempts = 3
)

type NoteService struct {
	noteRepo repositories.NoteRepository
	userRepo repositories.UserRepository
	events   *messaging.EventPublisher
}

func NewNoteService(
	noteRepo repositories.NoteRepository,
	userRepo repositories.UserRepository,
	events *messaging.EventPublisher,
) interfaces.NoteService {
	return &NoteService{
		noteRepo: noteRepo,
		userRepo: userRepo,
		events:   events,
	}
}

// resolveCaller turns the authenticated username into a stored user.
func (s *NoteService) resolveCaller(callerUsername string) (*entities.User, error) {
	caller, err := s.userRepo.FindByUsername(callerUsername)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, ErrIdentityNotResolved
	}
	return caller, nil
}

// authorizeNote is the single ownership guard: look the note up, then
// compare its owner against the caller. It runs before every mutation.
func (s *NoteService) authorizeNote(callerUsername string, noteId uuid.UUID) (*entities.Note, error) {
	caller, err := s.resolveCaller(callerUsername)
	if err != nil {
		return nil, err
	}

	note, err := s.noteRepo.FindById(noteId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	if !note.IsOwnedBy(caller.Id) {
		return nil, ErrNotNoteOwner
	}

	return note, nil
}

func (s *NoteService) ListNotes(callerUsername string) (*query.NoteQueryListResult, error) {
	caller, err := s.resolveCaller(callerUsername)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.FindByOwner(caller.Id)
	if err != nil {
		return nil, err
	}

	results := make([]*common.NoteResult, 0, len(notes))
	for _, note := range notes {
		results = append(results, mapper.NewNoteResultFromEntity(note))
	}

	return &query.NoteQueryListResult{Result: results}, nil
}

func (s *NoteService) CreateNote(callerUsername string, createCommand *command.CreateNoteCommand) (*command.CreateNoteCommandResult, error) {
	caller, err := s.resolveCaller(callerUsername)
	if err != nil {
		return nil, err
	}

	newNote := entities.NewNote(caller.Id, createCommand.Title, createCommand.Content)
	validatedNote, err := entities.NewValidatedNote(newNote)
	if err != nil {
		return nil, err
	}

	createdNote, err := s.noteRepo.Save(validatedNote)
	if err != nil {
		return nil, err
	}

	s.events.Publish(messaging.SubjectNoteCreated, createdNote.Id.String())

	return &command.CreateNoteCommandResult{
		Result: mapper.NewNoteResultFromEntity(createdNote),
	}, nil
}

func (s *NoteService) UpdateNote(callerUsername string, noteId uuid.UUID, updateCommand *command.UpdateNoteCommand) (*command.UpdateNoteCommandResult, error) {
	note, err := s.authorizeNote(callerUsername, noteId)
	if err != nil {
		return nil, err
	}

	// The share token is intentionally left untouched by a content update.
	note.UpdateContent(updateCommand.Title, updateCommand.Content)
	validatedNote, err := entities.NewValidatedNote(note)
	if err != nil {
		return nil, err
	}

	updatedNote, err := s.noteRepo.Save(validatedNote)
	if err != nil {
		return nil, err
	}

	return &command.UpdateNoteCommandResult{
		Result: mapper.NewNoteResultFromEntity(updatedNote),
	}, nil
}

func (s *NoteService) DeleteNote(callerUsername string, noteId uuid.UUID) error {
	note, err := s.authorizeNote(callerUsername, noteId)
	if err != nil {
		return err
	}

	// Deletion invalidates any outstanding share token with the row.
	if err := s.noteRepo.Delete(note.Id); err != nil {
		return err
	}

	s.events.Publish(messaging.SubjectNoteDeleted, note.Id.String())

	return nil
}

func (s *NoteService) EnableSharing(callerUsername string, noteId uuid.UUID) (*command.ShareNoteCommandResult, error) {
	note, err := s.authorizeNote(callerUsername, noteId)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < shareTokenAttempts; attempt++ {
		token := note.EnableSharing()

		validatedNote, err := entities.NewValidatedNote(note)
		if err != nil {
			return nil, err
		}

		_, err = s.noteRepo.Save(validatedNote)
		if errors.Is(err, repositories.ErrDuplicateShareToken) {
			continue
		}
		if err != nil {
			return nil, err
		}

		s.events.Publish(messaging.SubjectNoteShared, note.Id.String())

		return &command.ShareNoteCommandResult{ShareUrl: shareUrlPrefix + token}, nil
	}

	return nil, ErrShareTokenExhausted
}

func (s *NoteService) DisableSharing(callerUsername string, noteId uuid.UUID) (*command.UnshareNoteCommandResult, error) {
	note, err := s.authorizeNote(callerUsername, noteId)
	if err != nil {
		return nil, err
	}

	// Unsharing an already-unshared note is a silent no-op.
	if note.IsShared() {
		note.DisableSharing()
		validatedNote, err := entities.NewValidatedNote(note)
		if err != nil {
			return nil, err
		}

		if _, err := s.noteRepo.Save(validatedNote); err != nil {
			return nil, err
		}

		s.events.Publish(messaging.SubjectNoteUnshared, note.Id.String())
	}

	return &command.UnshareNoteCommandResult{Message: "Sharing disabled"}, nil
}
