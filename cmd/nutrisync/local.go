package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nutrisync/nutrisync/internal/paths"
	"github.com/nutrisync/nutrisync/internal/store"
	"github.com/nutrisync/nutrisync/internal/tui/theme"
	"github.com/nutrisync/nutrisync/internal/xerrors"
)

// localUserID keys all local data. The CLI is single user; multi-user
// identity only exists on the server.
const localUserID = "local"

var (
	headerStyle  = lipgloss.NewStyle().Foreground(theme.ColorTeal).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(theme.ColorSleep).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(theme.ColorDim)
	successStyle = lipgloss.NewStyle().Foreground(theme.ColorHighRecovery)
	warnStyle    = lipgloss.NewStyle().Foreground(theme.ColorMediumRecovery)
)

// openStore opens the app database under ~/.config/nutrisync, creating
// the directory on first run.
func openStore(ctx context.Context) (*store.Store, error) {
	if _, err := paths.EnsureDir(); err != nil {
		return nil, err
	}
	dbPath, err := paths.DB()
	if err != nil {
		return nil, err
	}
	return store.Open(ctx, dbPath)
}

// quietLogger backs services whose logs would clutter CLI output.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// describeValidation flattens a validation error's field map for
// terminal display. Other errors pass through unchanged.
func describeValidation(err error) error {
	e := xerrors.As(err)
	if e == nil || e.Validation == nil {
		return err
	}

	var b strings.Builder
	b.WriteString("invalid input:")
	for _, field := range slices.Sorted(maps.Keys(e.Validation.Fields)) {
		fmt.Fprintf(&b, "\n  %s %s", field, e.Validation.Fields[field])
	}
	return errors.New(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
