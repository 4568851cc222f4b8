package quizgen

// Config controls prompt sizing, request limits and validation.
type Config struct {
	// Validators run in order on every candidate; the first failure
	// drops it. Empty means DefaultValidators().
	Validators []Validator

	// MaxQuestions caps Request.Count. Zero disables the cap.
	MaxQuestions int

	// MaxTokens is the token budget for one generation.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the standard validator chain and limits.
func DefaultConfig() Config {
	return Config{
		Validators:   DefaultValidators(),
		MaxQuestions: 20,
		MaxTokens:    1536,
		Temperature:  0.7,
	}
}

func (c Config) validators() []Validator {
	if len(c.Validators) == 0 {
		return DefaultValidators()
	}
	return c.Validators
}
