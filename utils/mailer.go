package utils

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Mailer struct {
	client *ses.Client
	sender string
}

func NewMailer(client *ses.Client, sender string) *Mailer {
	return &Mailer{client: client, sender: sender}
}

func (m *Mailer) sendEmail(ctx context.Context, to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.sender),
	}

	_, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendWelcomeEmail notifies a user that an admin created their account.
func (m *Mailer) SendWelcomeEmail(ctx context.Context, to, username string) error {
	subject := "Your NutriCook account"
	body := fmt.Sprintf("An account with username %q has been created for you on NutriCook.\n\nSign in with the password provided by your administrator and change it after first login.", username)
	return m.sendEmail(ctx, to, subject, body)
}
