package logger_test

import (
	"testing"

	"github.com/mkarson1997/karatay-ders-program/internal/platform/config"
	"github.com/mkarson1997/karatay-ders-program/internal/platform/logger"
)

func TestNewHonoursLevelAndFormat(t *testing.T) {
	t.Parallel()
	log, err := logger.New(config.LogConfig{Level: "warn", Format: "json"})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if log.Core().Enabled(-1) {
		t.Fatalf("debug must be disabled at warn level")
	}
	if _, err := logger.New(config.LogConfig{Level: "loud", Format: "console"}); err == nil {
		t.Fatalf("unknown level should fail")
	}
}
