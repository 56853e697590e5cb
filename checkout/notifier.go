package checkout

import (
	"kinscreen-backend/mailer"
	"kinscreen-backend/mailer/templates"
)

// Notification carries everything needed to pick and fill the post-payment
// template.
type Notification struct {
	Gift          bool
	GiftEmail     string
	SenderName    string
	GiftMessage   string
	CustomerName  string
	CustomerEmail string
	PlanName      string
}

// Notifier sends exactly one mail per successful payment: the gift
// notification in gift mode, the welcome mail otherwise. It runs after the
// payment has settled, so its errors are reported but must never be treated
// as a payment failure, and it is never retried.
type Notifier struct {
	mail mailer.Sender
}

func NewNotifier(mail mailer.Sender) *Notifier {
	return &Notifier{mail: mail}
}

func (n *Notifier) PaymentSucceeded(note Notification) error {
	if n == nil || n.mail == nil {
		return nil
	}
	if note.Gift {
		return n.mail.Send(note.GiftEmail, templates.Gift(note.GiftEmail, note.SenderName, note.PlanName, note.GiftMessage))
	}
	return n.mail.Send(note.CustomerEmail, templates.Welcome(note.CustomerEmail, note.CustomerName, note.PlanName))
}
