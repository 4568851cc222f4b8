package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"easy":     LevelEasy,
		" Medium ": LevelMedium,
		"HARD":     LevelHard,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseLevel("impossible")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestRequestNormalize(t *testing.T) {
	cfg := DefaultConfig()

	req, err := Request{Topic: "  Photosynthesis  "}.Normalize(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Photosynthesis", req.Topic)
	assert.Equal(t, LevelEasy, req.Level)
	assert.Equal(t, DefaultCount, req.Count)

	req, err = Request{Topic: "Go", Level: "Hard", Count: 20}.Normalize(cfg)
	require.NoError(t, err)
	assert.Equal(t, LevelHard, req.Level)
	assert.Equal(t, 20, req.Count)

	_, err = Request{Topic: "Go", Count: 21}.Normalize(cfg)
	assert.ErrorIs(t, err, ErrInvalidCount)

	// Zero MaxQuestions disables the cap.
	req, err = Request{Topic: "Go", Count: 500}.Normalize(Config{})
	require.NoError(t, err)
	assert.Equal(t, 500, req.Count)
}

func TestConfigValidatorsDefault(t *testing.T) {
	assert.Len(t, Config{}.validators(), 3)

	custom := Config{Validators: []Validator{&QuestionValidator{}}}
	assert.Len(t, custom.validators(), 1)
}
