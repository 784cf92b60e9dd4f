package mailer

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
// Sender addresses belong to the provider configs.
type Config struct {
	Provider       string `env:"MAILER_PROVIDER" envDefault:"ses"`
	BodyFormat     string `env:"MAILER_BODY_FORMAT" envDefault:"text"`
	AttachmentName string `env:"MAILER_ATTACHMENT_NAME" envDefault:"invoice.pdf"`
	Layout         string `env:"MAILER_LAYOUT"`
	EscapeText     bool   `env:"MAILER_ESCAPE_TEXT" envDefault:"false"`
	Sanitize       bool   `env:"MAILER_SANITIZE" envDefault:"false"`
}
