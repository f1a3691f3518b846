package export

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/internet-kid/notes-api/internal/models"
	"github.com/internet-kid/notes-api/internal/repository"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeMailer records export mails instead of sending them.
type fakeMailer struct {
	sent chan sentMail
}

type sentMail struct {
	to      string
	userID  uint64
	payload []byte
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan sentMail, 1)}
}

func (m *fakeMailer) SendNotesExport(to string, userID uint64, payload []byte) error {
	m.sent <- sentMail{to: to, userID: userID, payload: payload}
	return nil
}

// WorkerTestSuite defines the test suite for the export Worker
type WorkerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	queue  *MemoryQueue
	mailer *fakeMailer
	cancel context.CancelFunc
}

// SetupTest runs before each test
func (suite *WorkerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Note{},
		&models.Collaboration{},
	)
	suite.Require().NoError(err)

	suite.queue = NewMemoryQueue(4)
	suite.mailer = newFakeMailer()

	worker := NewWorker(
		suite.queue,
		repository.NewNoteRepository(suite.db),
		repository.NewUserRepository(suite.db),
		suite.mailer,
		zerolog.Nop(),
	)

	var ctx context.Context
	ctx, suite.cancel = context.WithCancel(context.Background())
	go worker.Run(ctx)
}

// TearDownTest runs after each test
func (suite *WorkerTestSuite) TearDownTest() {
	suite.cancel()

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *WorkerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *WorkerTestSuite) createTestNote(title string, ownerID uint64) *models.Note {
	note := &models.Note{
		Title:  title,
		Body:   "Test Body",
		UserID: ownerID,
	}
	suite.db.Create(note)
	return note
}

func (suite *WorkerTestSuite) waitForMail() sentMail {
	select {
	case mail := <-suite.mailer.sent:
		return mail
	case <-time.After(5 * time.Second):
		suite.FailNow("timed out waiting for export mail")
		return sentMail{}
	}
}

// TestExport_MailsVisibleNotes tests that an export covers owned and shared notes
func (suite *WorkerTestSuite) TestExport_MailsVisibleNotes() {
	owner := suite.createTestUser("alice")
	other := suite.createTestUser("bob")
	suite.createTestNote("Alice's note", owner.ID)
	shared := suite.createTestNote("Bob's shared note", other.ID)
	suite.db.Create(&models.Collaboration{NoteID: shared.ID, UserID: owner.ID})
	suite.createTestNote("Bob's private note", other.ID)

	err := suite.queue.Enqueue(Job{
		ID:          "job-1",
		UserID:      owner.ID,
		TargetEmail: "alice@elsewhere.example",
		RequestedAt: time.Now(),
	})
	suite.Require().NoError(err)

	mail := suite.waitForMail()

	assert.Equal(suite.T(), "alice@elsewhere.example", mail.to)
	assert.Equal(suite.T(), owner.ID, mail.userID)

	var notes []models.Note
	err = json.Unmarshal(mail.payload, &notes)
	suite.Require().NoError(err)
	suite.Require().Len(notes, 2)

	titles := []string{notes[0].Title, notes[1].Title}
	assert.Contains(suite.T(), titles, "Alice's note")
	assert.Contains(suite.T(), titles, "Bob's shared note")
	assert.NotContains(suite.T(), titles, "Bob's private note")
}

// TestExport_SkipsFailedJob tests that a job for a missing user is dropped
func (suite *WorkerTestSuite) TestExport_SkipsFailedJob() {
	owner := suite.createTestUser("alice")
	suite.createTestNote("Alice's note", owner.ID)

	// Unknown user: the worker must drop this job and keep running
	err := suite.queue.Enqueue(Job{
		ID:          "job-bad",
		UserID:      9999,
		TargetEmail: "ghost@example.com",
		RequestedAt: time.Now(),
	})
	suite.Require().NoError(err)

	err = suite.queue.Enqueue(Job{
		ID:          "job-good",
		UserID:      owner.ID,
		TargetEmail: "alice@elsewhere.example",
		RequestedAt: time.Now(),
	})
	suite.Require().NoError(err)

	mail := suite.waitForMail()
	assert.Equal(suite.T(), owner.ID, mail.userID)
}

// TestSuite runs the test suite
func TestWorkerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerTestSuite))
}
