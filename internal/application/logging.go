package application

import (
	"io"

	"github.com/charmbracelet/log"
)

func loggerOrDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(io.Discard)
}
