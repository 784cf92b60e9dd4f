package ses

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/invoiceagent/invoiceagent/pkg/mailer"
)

const charset = "UTF-8"

// Client is the subset of the SESv2 API used by Sender.
type Client interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
	GetAccount(ctx context.Context, in *sesv2.GetAccountInput, optFns ...func(*sesv2.Options)) (*sesv2.GetAccountOutput, error)
}

var (
	_ mailer.Sender = (*Sender)(nil)
	_ mailer.Pinger = (*Sender)(nil)
)

// Sender implements mailer.Sender using Amazon SES.
// Emails without attachments or custom headers go out as simple content;
// everything else is sent as a raw MIME message.
type Sender struct {
	client Client
	config Config
}

// New creates a Sender with an SESv2 client built from cfg.
func New(ctx context.Context, cfg Config) (*Sender, error) {
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: sender email is required", ErrInvalidConfig)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	client := sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
		if cfg.AccessKey != "" {
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Sender around an existing client.
func NewWithClient(client Client, cfg Config) *Sender {
	return &Sender{client: client, config: cfg}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	in := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses:  email.To,
			CcAddresses:  email.CC,
			BccAddresses: email.BCC,
		},
		EmailTags: convertTags(email.Tags),
	}
	if email.ReplyTo != "" {
		in.ReplyToAddresses = []string{email.ReplyTo}
	}
	if s.config.ConfigurationSet != "" {
		in.ConfigurationSetName = aws.String(s.config.ConfigurationSet)
	}

	if email.HasAttachments() || len(email.Headers) > 0 {
		raw, err := mailer.RawMessage(email, from)
		if err != nil {
			return "", err
		}
		in.Content = &types.EmailContent{Raw: &types.RawMessage{Data: raw}}
	} else {
		in.Content = &types.EmailContent{Simple: simpleMessage(email)}
	}

	out, err := s.client.SendEmail(ctx, in)
	if err != nil {
		return "", wrapSESError(err)
	}
	return aws.ToString(out.MessageId), nil
}

// Ping checks that the account is reachable and allowed to send.
func (s *Sender) Ping(ctx context.Context) error {
	out, err := s.client.GetAccount(ctx, &sesv2.GetAccountInput{})
	if err != nil {
		return wrapSESError(err)
	}
	if !out.SendingEnabled {
		return fmt.Errorf("%w: sending is disabled for this account", ErrRejected)
	}
	return nil
}

func simpleMessage(email *mailer.Email) *types.Message {
	body := &types.Body{
		Html: &types.Content{Data: aws.String(email.HTML), Charset: aws.String(charset)},
	}
	if email.Text != "" {
		body.Text = &types.Content{Data: aws.String(email.Text), Charset: aws.String(charset)}
	}
	return &types.Message{
		Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charset)},
		Body:    body,
	}
}

func convertTags(tags mailer.Tags) []types.MessageTag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]types.MessageTag, 0, len(tags))
	for name, value := range tags.Pairs() {
		out = append(out, types.MessageTag{Name: aws.String(name), Value: aws.String(value)})
	}
	return out
}
