// SPDX-License-Identifier: Unlicense OR MIT

// Package log routes the standard logger for the sideslip demo.
// The terminal belongs to the user interface, so log output goes
// to a file or nowhere.
package log

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

const prefix = "sideslip"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup directs the standard logger to the file at path, creating
// or appending to it. An empty path discards log output. The
// returned Closer closes the file.
func Setup(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	return f, nil
}
