package services

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/internet-kid/notes-api/internal/export"
)

var ErrInvalidTargetEmail = errors.New("invalid target email")

// ExportService accepts export requests and hands them to the queue. It
// never touches the cache: the worker reads the note store directly.
type ExportService struct {
	queue export.Queue
}

// NewExportService creates a new ExportService
func NewExportService(queue export.Queue) *ExportService {
	return &ExportService{queue: queue}
}

// RequestExport enqueues an export of the user's visible notes to
// targetEmail and returns the job ID. The actual snapshot and delivery
// happen asynchronously with no ordering guarantee against later requests.
func (s *ExportService) RequestExport(userID uint64, targetEmail string) (string, error) {
	if _, err := mail.ParseAddress(targetEmail); err != nil {
		return "", ErrInvalidTargetEmail
	}

	job := export.Job{
		ID:          uuid.NewString(),
		UserID:      userID,
		TargetEmail: targetEmail,
		RequestedAt: time.Now(),
	}

	if err := s.queue.Enqueue(job); err != nil {
		return "", fmt.Errorf("failed to enqueue export: %w", err)
	}

	return job.ID, nil
}
