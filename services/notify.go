package services

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/soyedarif/ralph-s-crafts-server/models"
)

// Notifier emails instructors about moderation outcomes. Delivery is best
// effort: the moderation write has already committed before any mail is
// attempted, and missing SendGrid config just skips the send.
type Notifier struct {
	logger *zap.Logger
}

func NewNotifier(logger *zap.Logger) *Notifier {
	return &Notifier{logger: logger}
}

// ClassModerated sends the status decision (and any feedback) to the
// class's instructor. Call it in a goroutine; it recovers its own panics.
func (n *Notifier) ClassModerated(class models.Class, status, feedback string) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("notifier panic recovered", zap.Any("panic", r))
		}
	}()

	apiKey := os.Getenv("SENDGRID_API_KEY")
	fromEmail := os.Getenv("FROM_EMAIL")
	if apiKey == "" || fromEmail == "" {
		n.logger.Debug("sendgrid not configured, skipping moderation email",
			zap.String("class_id", class.ID))
		return
	}

	subject := fmt.Sprintf("Your class %q was %s", class.Name, status)
	body := fmt.Sprintf("Hi %s,\n\nYour class %q is now %s.", class.InstructorName, class.Name, status)
	if feedback != "" {
		body += "\n\nReviewer feedback:\n" + feedback
	}

	from := mail.NewEmail("Ralph's Crafts", fromEmail)
	to := mail.NewEmail(class.InstructorName, class.InstructorEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)
	client := sendgrid.NewSendClient(apiKey)

	response, err := client.Send(message)
	if err != nil {
		n.logger.Error("failed to send moderation email",
			zap.String("class_id", class.ID), zap.Error(err))
		return
	}
	n.logger.Info("moderation email sent",
		zap.String("class_id", class.ID), zap.Int("status_code", response.StatusCode))
}
