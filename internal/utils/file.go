package utils

import "os"

// FileExists checks if the given file exists.
func FileExists(filename string) bool {
	if filename == "" {
		return false
	}
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// FirstExisting returns the first path in candidates that exists on disk.
// The second return is false when none of them do.
func FirstExisting(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if FileExists(c) {
			return c, true
		}
	}
	return "", false
}
