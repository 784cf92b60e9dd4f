package document

import "time"

// DefaultFilename is used when Config.Filename is empty.
const DefaultFilename = "invoice.pdf"

// Config holds document rendering configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	BrowserBin string        `env:"ROD_BROWSER_BIN"`
	Filename   string        `env:"DOCUMENT_FILENAME" envDefault:"invoice.pdf"`
	Timeout    time.Duration `env:"DOCUMENT_TIMEOUT" envDefault:"30s"`
	MaxPages   int64         `env:"DOCUMENT_MAX_PAGES" envDefault:"2"`
	NoSandbox  bool          `env:"DOCUMENT_NO_SANDBOX" envDefault:"false"`
}

func (c Config) withDefaults() Config {
	if c.Filename == "" {
		c.Filename = DefaultFilename
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxPages <= 0 {
		c.MaxPages = 2
	}
	return c
}
