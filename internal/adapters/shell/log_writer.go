package shell

import (
	"strings"

	"go.trai.ch/replan/internal/core/ports"
	"go.trai.ch/zerr"
)

// logWriter forwards process output to the logger line by line.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    strings.Builder
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)

	for {
		s := w.buf.String()
		idx := strings.IndexByte(s, '\n')
		if idx < 0 {
			break
		}
		line := s[:idx]
		w.buf.Reset()
		w.buf.WriteString(s[idx+1:])
		w.emit(line)
	}

	return len(p), nil
}

func (w *logWriter) emit(line string) {
	if line == "" {
		return
	}
	if w.level == "error" {
		w.logger.Error(zerr.New(line))
		return
	}
	w.logger.Info(line)
}
