package interfaces

import "github.com/soumya9832/notes-backend/internal/application/query"

// ShareResolver serves unauthenticated reads by share token.
type ShareResolver interface {
	Resolve(token string) (*query.SharedNoteQueryResult, error)
}
