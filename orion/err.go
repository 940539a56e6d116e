package orion

import (
	"log/slog"
	"os"
)

var exit = os.Exit

// Fatal logs the error and exits the process with status 1. Use it for
// errors during startup that the application cannot recover from.
func Fatal(err error, msg string) {
	slog.Error(msg, slog.Any("err", err))
	exit(1)
}
