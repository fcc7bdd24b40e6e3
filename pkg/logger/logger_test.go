package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_LevelMapping(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		log := New(Config{Level: tc.level})
		assert.Equal(t, tc.want, log.GetLevel(), "level=%q", tc.level)
	}
}

func TestNew_PrettyDoesNotChangeLevel(t *testing.T) {
	log := New(Config{Level: "debug", Pretty: true})
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}
