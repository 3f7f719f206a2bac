package entities

type ValidatedNote struct {
	*Note
}

func NewValidatedNote(note *Note) (*ValidatedNote, error) {
	if err := note.validate(); err != nil {
		return nil, err
	}

	return &ValidatedNote{Note: note}, nil
}

func (vn *ValidatedNote) GetNote() *Note {
	return vn.Note
}
