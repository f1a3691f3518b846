package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/internet-kid/notes-api/internal/mail"
	"github.com/internet-kid/notes-api/internal/repository"
	"github.com/rs/zerolog"
)

// Worker drains the export queue: for each job it loads the user's visible
// notes straight from the note store — never from the cache, so the export
// always reflects current state — and mails them as a JSON attachment.
type Worker struct {
	queue    Queue
	noteRepo repository.NoteRepository
	userRepo repository.UserRepository
	mailer   mail.Mailer
	log      zerolog.Logger
}

// NewWorker creates a Worker.
func NewWorker(queue Queue, noteRepo repository.NoteRepository, userRepo repository.UserRepository, mailer mail.Mailer, log zerolog.Logger) *Worker {
	return &Worker{
		queue:    queue,
		noteRepo: noteRepo,
		userRepo: userRepo,
		mailer:   mailer,
		log:      log,
	}
}

// Run consumes jobs until the context is cancelled. A failed job is logged
// and dropped; delivery retries belong to the mail transport, not here.
func (w *Worker) Run(ctx context.Context) {
	w.log.Info().Msg("export worker started")

	for {
		job, err := w.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				w.log.Info().Msg("export worker stopped")
				return
			}
			w.log.Error().Err(err).Msg("failed to dequeue export job")
			continue
		}

		if err := w.process(job); err != nil {
			w.log.Error().
				Err(err).
				Str("job_id", job.ID).
				Uint64("user_id", job.UserID).
				Msg("export job failed")
			continue
		}

		w.log.Info().
			Str("job_id", job.ID).
			Uint64("user_id", job.UserID).
			Msg("export job completed")
	}
}

func (w *Worker) process(job *Job) error {
	user, err := w.userRepo.FindByID(job.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	notes, err := w.noteRepo.VisibleTo(user.ID)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	payload, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}

	if err := w.mailer.SendNotesExport(job.TargetEmail, user.ID, payload); err != nil {
		return fmt.Errorf("failed to send export mail: %w", err)
	}

	return nil
}
