package audit

import "context"

// Event is one append-only audit record emitted on note mutation.
type Event struct {
	Event  string `json:"event"`
	UserID int    `json:"user_id"`
	NoteID int    `json:"note_id"`
}

type Recorder interface {
	Record(ctx context.Context, event Event) error
	Close() error
}
