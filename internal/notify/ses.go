package notify

import (
	"context"
	"fmt"
	"log"

	appCfg "fittrack/backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// sesMailer implements Mailer on top of AWS Simple Email Service.
type sesMailer struct {
	client *ses.Client
	sender string
}

// NewSESMailer creates a Mailer backed by SES. Credentials come from the
// default AWS credential chain; only the region and verified sender
// address are configured explicitly.
func NewSESMailer(cfg appCfg.EmailConfig) (Mailer, error) {
	if cfg.Sender == "" {
		return nil, fmt.Errorf("email sender address is required")
	}

	awsSDKConfig, err := awsCfg.LoadDefaultConfig(context.TODO(), awsCfg.WithRegion(cfg.Region))
	if err != nil {
		log.Printf("ERROR: Failed to load AWS SDK config for SES: %v", err)
		return nil, err
	}

	return &sesMailer{
		client: ses.NewFromConfig(awsSDKConfig),
		sender: cfg.Sender,
	}, nil
}

func (m *sesMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(htmlBody),
				},
			},
		},
		Source: aws.String(m.sender),
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send to %s: %w", to, err)
	}
	return nil
}
