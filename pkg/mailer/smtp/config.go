package smtp

// Config holds SMTP relay configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host        string `env:"SMTP_HOST" envDefault:"localhost"`
	Username    string `env:"SMTP_USERNAME"`
	Password    string `env:"SMTP_PASSWORD"`
	SenderEmail string `env:"SMTP_FROM_EMAIL" envDefault:"noreply@invoiceagent.com.au"`
	SenderName  string `env:"SMTP_FROM_NAME"`
	Port        int    `env:"SMTP_PORT" envDefault:"587"`
}
