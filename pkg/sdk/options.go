package seekdex

import "go.uber.org/zap"

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string
	db       int

	embedder      Embedder
	candidatePool int

	logger *zap.Logger
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithCredentials sets the Redis ACL username and logical database.
func WithCredentials(username string, db int) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
		c.db = db
	})
}

// WithEmbedder sets the text embedding provider. Without it searches run
// keyword-only.
func WithEmbedder(e Embedder) Option {
	return optionFunc(func(c *clientConfig) {
		c.embedder = e
	})
}

// WithCandidatePool sets how many hits each provider contributes before
// blending. Default: 30.
func WithCandidatePool(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.candidatePool = n
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
