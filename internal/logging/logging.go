// Package logging provides centralized logging functionality using logrus.
// All log output goes to standard error so that tables and CSV notices own
// standard output.
package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// programName is used as a field in all log entries for identification.
const programName = "sl_tools"

// Setup configures logrus for CLI use: standard error output, plain text
// formatting, DEBUG level when debug mode is requested.
func Setup(debug bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if debug {
		log.SetLevel(log.DebugLevel)
		log.Debug("Debug mode enabled")
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// LogInfo logs an informational message with the programName field.
func LogInfo(msg string) {
	log.WithFields(log.Fields{"job": programName}).Info(msg)
}

// LogDebug logs a debug message with the programName field.
func LogDebug(msg string) {
	log.WithFields(log.Fields{"job": programName}).Debug(msg)
}

// LogError logs the provided error message with the programName field.
// This function should be used for recoverable errors that do not
// terminate the program.
func LogError(msg string) {
	log.WithFields(log.Fields{"job": programName}).Error(msg)
}

// LogRemoteError reports a failed remote call on standard error. The caller
// is expected to continue to normal termination afterwards; remote failures
// past argument validation do not map to an exit code.
func LogRemoteError(err error) {
	log.WithFields(log.Fields{"job": programName}).Error(err)
}
