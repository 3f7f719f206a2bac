package messaging

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	SubjectNoteCreated  = "note.created"
	SubjectNoteDeleted  = "note.deleted"
	SubjectNoteShared   = "note.shared"
	SubjectNoteUnshared = "note.unshared"
)

type NoteEvent struct {
	NoteId     string    `json:"note_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher pushes note lifecycle events to NATS. Publishing is
// best-effort: a nil publisher or a broken connection never fails the
// request that triggered the event.
type EventPublisher struct {
	nc *nats.Conn
}

// ConnectPublisher returns a disabled publisher when url is empty.
func ConnectPublisher(url string) (*EventPublisher, error) {
	if url == "" {
		return nil, nil
	}

	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	log.Println("Connected to NATS at", url)
	return &EventPublisher{nc: nc}, nil
}

func (p *EventPublisher) Publish(subject, noteId string) {
	if p == nil || p.nc == nil || !p.nc.IsConnected() {
		return
	}

	payload, err := json.Marshal(NoteEvent{NoteId: noteId, OccurredAt: time.Now()})
	if err != nil {
		return
	}

	if err := p.nc.Publish(subject, payload); err != nil {
		log.Printf("Failed to publish %s event: %v", subject, err)
	}
}

func (p *EventPublisher) Close() {
	if p == nil || p.nc == nil {
		return
	}
	if p.nc.IsConnected() {
		p.nc.Close()
	}
}
