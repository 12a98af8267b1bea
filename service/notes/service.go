package notes

import (
	"context"

	"github.com/rs/zerolog"

	"notes-api/audit"
	"notes-api/cache"
	"notes-api/metrics"
	"notes-api/models"
	"notes-api/repository/notes"
)

// DefaultService wraps the repository with the per-user listing
// cache and the audit trail. Every mutation invalidates the
// caller's cached listing before recording the event.
type DefaultService struct {
	repo    notes.Repository
	cache   cache.Cache
	auditor audit.Recorder
	logger  zerolog.Logger
}

func NewDefaultService(repo notes.Repository, c cache.Cache, auditor audit.Recorder, logger zerolog.Logger) *DefaultService {
	return &DefaultService{
		repo:    repo,
		cache:   c,
		auditor: auditor,
		logger:  logger,
	}
}

func (d *DefaultService) List(ctx context.Context, userID int) ([]models.Note, error) {
	key := cache.UserKey(userID)
	if cached, ok := d.cache.Get(key); ok {
		return cached, nil
	}

	listed, err := d.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	d.cache.Set(key, listed)
	return listed, nil
}

func (d *DefaultService) Get(ctx context.Context, noteID, userID int) (*models.Note, error) {
	return d.repo.GetByIDAndUser(ctx, noteID, userID)
}

func (d *DefaultService) Create(ctx context.Context, userID int, title, content string) (*models.Note, error) {
	note, err := d.repo.Create(ctx, userID, title, content)
	if err != nil {
		return nil, err
	}

	d.cache.Invalidate(cache.UserKey(userID))
	d.record(ctx, "note.created", userID, note.ID)
	metrics.NoteOperations.WithLabelValues("create").Inc()
	return note, nil
}

func (d *DefaultService) Update(ctx context.Context, noteID, userID int, title, content *string) (*models.Note, error) {
	note, err := d.repo.Update(ctx, noteID, userID, title, content)
	if err != nil {
		return nil, err
	}

	d.cache.Invalidate(cache.UserKey(userID))
	d.record(ctx, "note.updated", userID, note.ID)
	metrics.NoteOperations.WithLabelValues("update").Inc()
	return note, nil
}

// Delete is idempotent: a missing id still counts as deleted and
// still produces an audit record.
func (d *DefaultService) Delete(ctx context.Context, noteID, userID int) error {
	if err := d.repo.Delete(ctx, noteID, userID); err != nil {
		return err
	}

	d.cache.Invalidate(cache.UserKey(userID))
	d.record(ctx, "note.deleted", userID, noteID)
	metrics.NoteOperations.WithLabelValues("delete").Inc()
	return nil
}

// record is best-effort: the mutation already committed, so a sink
// failure is logged rather than surfaced to the caller.
func (d *DefaultService) record(ctx context.Context, event string, userID, noteID int) {
	err := d.auditor.Record(ctx, audit.Event{Event: event, UserID: userID, NoteID: noteID})
	if err != nil {
		d.logger.Error().Err(err).
			Str("event", event).
			Int("user_id", userID).
			Int("note_id", noteID).
			Msg("failed to record audit event")
		return
	}

	d.logger.Info().
		Str("event", event).
		Int("user_id", userID).
		Int("note_id", noteID).
		Msg("note mutation")
}
