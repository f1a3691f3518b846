package mail

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/gomail.v2"
)

// Mailer sends outbound mail for the application.
type Mailer interface {
	// SendNotesExport mails the serialized notes document as an attachment.
	SendNotesExport(to string, userID uint64, payload []byte) error
}

// SMTPMailer is a Mailer over a plain SMTP transport.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates an SMTPMailer.
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) SendNotesExport(to string, userID uint64, payload []byte) error {
	filename := fmt.Sprintf("notes_user-%d_%s.json", userID, time.Now().Format("2006-01-02T15-04-05"))

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Notes Export")
	msg.SetBody("text/plain", "Your notes export is attached.")
	msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(payload)
		return err
	}))

	return m.dialer.DialAndSend(msg)
}
