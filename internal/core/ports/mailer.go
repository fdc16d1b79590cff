package ports

import "context"

// MailMessage is one outgoing e-mail. HTML is optional; when set, Text is
// sent as the plain-text alternative.
type MailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
