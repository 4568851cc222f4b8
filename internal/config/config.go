// Package config resolves edututor settings from defaults, an optional
// edututor.yaml file and EDUTUTOR_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/edututor/internal/llm"
	"github.com/abhisek/edututor/internal/quizgen"
)

// EnvPrefix is prepended to every environment variable, e.g.
// EDUTUTOR_LLM_PROVIDER for the llm.provider key.
const EnvPrefix = "EDUTUTOR"

// Config is the resolved application configuration.
type Config struct {
	LLM    llm.Config
	Quiz   QuizConfig
	Lesson LessonConfig
	Logger LoggerConfig

	// DBPath is the SQLite database file. Empty means store.DefaultDBPath.
	DBPath string

	// User is the default learner ID for results and the library.
	User string

	// File is the config file that was read, if any.
	File string
}

// QuizConfig holds quiz generation settings.
type QuizConfig struct {
	Count        int
	MaxQuestions int
	MaxTokens    int
	Temperature  float64

	// Attempts is how many times the quiz command regenerates while the
	// quiz comes back empty.
	Attempts int
}

// LessonConfig holds learning module generation settings.
type LessonConfig struct {
	MaxTokens   int
	Temperature float64
}

// LoggerConfig selects the log level and output format.
type LoggerConfig struct {
	Level string // debug, info, warn, error
	Env   string // development (console) or production (JSON)
}

// QuizgenConfig converts the quiz settings into a quizgen.Config with the
// default validator chain.
func (c *Config) QuizgenConfig() quizgen.Config {
	cfg := quizgen.DefaultConfig()
	cfg.MaxQuestions = c.Quiz.MaxQuestions
	cfg.MaxTokens = c.Quiz.MaxTokens
	cfg.Temperature = c.Quiz.Temperature
	return cfg
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()

	// Left empty so an unset provider falls through to key discovery.
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", d.Timeout)

	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", d.Anthropic.Model)
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", d.OpenAI.Model)
	v.SetDefault("openai.base_url", "")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", d.Gemini.Model)
	v.SetDefault("openrouter.api_key", "")
	v.SetDefault("openrouter.model", d.OpenRouter.Model)
	v.SetDefault("openrouter.base_url", "")
	v.SetDefault("ollama.server_url", d.Ollama.ServerURL)
	v.SetDefault("ollama.model", d.Ollama.Model)

	v.SetDefault("retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("retry.multiplier", d.Retry.Multiplier)

	q := quizgen.DefaultConfig()
	v.SetDefault("quiz.count", quizgen.DefaultCount)
	v.SetDefault("quiz.max_questions", q.MaxQuestions)
	v.SetDefault("quiz.max_tokens", q.MaxTokens)
	v.SetDefault("quiz.temperature", q.Temperature)
	v.SetDefault("quiz.attempts", 2)

	v.SetDefault("lesson.max_tokens", 320)
	v.SetDefault("lesson.temperature", 0.7)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.env", "development")

	v.SetDefault("db.path", "")
	v.SetDefault("user", "default")
}

// Load reads configuration. When path is non-empty that file must exist;
// otherwise edututor.yaml is looked up in the working directory and the
// user config directory, and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("edututor")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := userConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		LLM: llm.Config{
			Provider: strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))),
			Anthropic: llm.AnthropicConfig{
				APIKey: v.GetString("anthropic.api_key"),
				Model:  v.GetString("anthropic.model"),
			},
			OpenAI: llm.OpenAIConfig{
				APIKey:  v.GetString("openai.api_key"),
				Model:   v.GetString("openai.model"),
				BaseURL: v.GetString("openai.base_url"),
			},
			Gemini: llm.GeminiConfig{
				APIKey: v.GetString("gemini.api_key"),
				Model:  v.GetString("gemini.model"),
			},
			OpenRouter: llm.OpenRouterConfig{
				APIKey:  v.GetString("openrouter.api_key"),
				Model:   v.GetString("openrouter.model"),
				BaseURL: v.GetString("openrouter.base_url"),
			},
			Ollama: llm.OllamaConfig{
				ServerURL: v.GetString("ollama.server_url"),
				Model:     v.GetString("ollama.model"),
			},
			Retry: llm.RetryConfig{
				MaxAttempts: v.GetInt("retry.max_attempts"),
				InitialWait: v.GetDuration("retry.initial_wait"),
				MaxWait:     v.GetDuration("retry.max_wait"),
				Multiplier:  v.GetFloat64("retry.multiplier"),
			},
			Timeout: v.GetDuration("llm.timeout"),
		},
		Quiz: QuizConfig{
			Count:        v.GetInt("quiz.count"),
			MaxQuestions: v.GetInt("quiz.max_questions"),
			MaxTokens:    v.GetInt("quiz.max_tokens"),
			Temperature:  v.GetFloat64("quiz.temperature"),
			Attempts:     v.GetInt("quiz.attempts"),
		},
		Lesson: LessonConfig{
			MaxTokens:   v.GetInt("lesson.max_tokens"),
			Temperature: v.GetFloat64("lesson.temperature"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("log.level"),
			Env:   v.GetString("log.env"),
		},
		DBPath: v.GetString("db.path"),
		User:   v.GetString("user"),
		File:   v.ConfigFileUsed(),
	}

	if cfg.LLM.Provider == "" {
		cfg.LLM, _ = cfg.LLM.Discover()
	}
	if cfg.Quiz.Attempts < 1 {
		cfg.Quiz.Attempts = 1
	}
	return cfg, nil
}

// userConfigDir returns $XDG_CONFIG_HOME/edututor, falling back to
// ~/.config/edututor.
func userConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "edututor")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "edututor")
}
