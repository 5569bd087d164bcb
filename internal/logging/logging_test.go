package logging

import (
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetup(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	Setup(false)
	if log.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, want info", log.GetLevel())
	}

	Setup(true)
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", log.GetLevel())
	}
}

func TestHelpersDoNotPanic(t *testing.T) {
	Setup(false)
	LogInfo("info message")
	LogDebug("debug message")
	LogError("error message")
}
