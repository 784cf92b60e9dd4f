package ses

// Config holds Amazon SES provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
//
// When AccessKey is empty, credentials come from the default AWS chain
// (environment, shared config, Lambda execution role).
type Config struct {
	Region           string `env:"SES_REGION" envDefault:"ap-southeast-2"`
	SenderEmail      string `env:"SES_FROM_EMAIL" envDefault:"noreply@invoiceagent.com.au"`
	SenderName       string `env:"SES_FROM_NAME"`
	ConfigurationSet string `env:"SES_CONFIGURATION_SET"`
	AccessKey        string `env:"SES_ACCESS_KEY_ID"`
	SecretKey        string `env:"SES_SECRET_ACCESS_KEY"`
	Endpoint         string `env:"SES_ENDPOINT"`
}
