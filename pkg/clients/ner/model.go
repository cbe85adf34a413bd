package ner

// Config NER sidecar client configuration
type Config struct {
	Addr    string `json:"addr"`    // sidecar base address, host:port
	Timeout int    `json:"timeout"` // request timeout in seconds
}

// Entity is one recognized span: a model label plus the covered text
type Entity struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Option configures the client
type Option func(*Config)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Timeout: 10,
	}
}

// WithAddr sets the sidecar address
func WithAddr(addr string) Option {
	return func(c *Config) {
		c.Addr = addr
	}
}

// WithTimeout sets the request timeout in seconds
func WithTimeout(timeout int) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}
