package main

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", errors.WithHint(errors.Newf("invalid --ui value %q", value), "expected auto|on|off")
	}
}

// shouldUseTUI: auto включает вид только на терминале и без --quiet.
func (s *session) shouldUseTUI() bool {
	switch s.uiMode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return !s.quiet && s.stdout == os.Stdout && isTerminal(os.Stdout)
	}
}
