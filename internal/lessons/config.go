package lessons

// Config holds lesson generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   320,
		Temperature: 0.7,
	}
}
