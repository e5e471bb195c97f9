package contact

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Mailer delivers the operator notification for a new contact message.
type Mailer interface {
	Notify(m Message) error
}

// SMTPMailer sends the notification through a plain SMTP relay.
type SMTPMailer struct {
	Addr string
	From string
	To   string
}

func NewSMTPMailer(addr, from, to string) *SMTPMailer {
	return &SMTPMailer{Addr: addr, From: from, To: to}
}

func (s *SMTPMailer) Notify(m Message) error {
	subject := "New Message from Website"
	if m.Subject != nil && *m.Subject != "" {
		subject += ": " + *m.Subject
	}

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", s.From)
	fmt.Fprintf(&body, "To: %s\r\n", s.To)
	fmt.Fprintf(&body, "Subject: %s\r\n\r\n", subject)
	if m.Name != nil {
		fmt.Fprintf(&body, "Name: %s\r\n", *m.Name)
	}
	if m.Email != nil {
		fmt.Fprintf(&body, "Email: %s\r\n", *m.Email)
	}
	if m.Phone != nil {
		fmt.Fprintf(&body, "Phone: %s\r\n", *m.Phone)
	}
	fmt.Fprintf(&body, "\r\n%s\r\n", m.Message)

	return smtp.SendMail(s.Addr, nil, s.From, []string{s.To}, []byte(body.String()))
}

// LogMailer writes the notification to the process log instead of sending
// it. Used when no SMTP relay is configured.
type LogMailer struct {
	To string
}

func (l *LogMailer) Notify(m Message) error {
	subject := "No Subject"
	if m.Subject != nil && *m.Subject != "" {
		subject = *m.Subject
	}
	log.Printf("contact notification for %s: %q (message #%d)", l.To, subject, m.ID)
	return nil
}
