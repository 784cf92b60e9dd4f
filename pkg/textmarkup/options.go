package textmarkup

// DefaultBankBlockStyle is the inline style of the <div> wrapping indented lines.
const DefaultBankBlockStyle = "margin-left: 36px;"

type config struct {
	bankBlockStyle string
	escape         bool
}

// Option configures a conversion.
type Option func(*config)

// WithEscaping HTML-escapes line content before it is placed into markup.
func WithEscaping() Option {
	return func(c *config) {
		c.escape = true
	}
}

// WithBankBlockStyle overrides the inline style of indented blocks.
// An empty style keeps the default.
func WithBankBlockStyle(style string) Option {
	return func(c *config) {
		if style != "" {
			c.bankBlockStyle = style
		}
	}
}

func newConfig(opts ...Option) *config {
	c := &config{bankBlockStyle: DefaultBankBlockStyle}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}
