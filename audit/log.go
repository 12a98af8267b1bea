package audit

import (
	"context"

	"github.com/rs/zerolog"
)

// LogRecorder writes audit events to the structured log. Used when
// no kafka brokers are configured.
type LogRecorder struct {
	logger zerolog.Logger
}

func NewLogRecorder(logger zerolog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) Record(_ context.Context, event Event) error {
	r.logger.Info().
		Str("event", event.Event).
		Int("user_id", event.UserID).
		Int("note_id", event.NoteID).
		Msg("audit")
	return nil
}

func (r *LogRecorder) Close() error { return nil }
