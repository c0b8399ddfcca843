//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"context"
	"strings"

	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/zerr"
)

// helpers are the desktop trash tools tried in order.
var helpers = []struct {
	name string
	args func(path string) []string
}{
	{name: "gio", args: func(p string) []string { return []string{"trash", p} }},
	{name: "trash-put", args: func(p string) []string { return []string{p} }},
	{name: "kioclient5", args: func(p string) []string { return []string{"move", p, "trash:/"} }},
	{name: "kioclient", args: func(p string) []string { return []string{"move", p, "trash:/"} }},
}

// moveToTrash runs the first installed helper that succeeds.
func (t *Trash) moveToTrash(ctx context.Context, path string) error {
	var lastErr error
	for _, h := range helpers {
		if _, err := t.lookPath(h.name); err != nil {
			continue
		}
		out, err := t.run(ctx, h.name, h.args(path)...)
		if err == nil {
			return nil
		}
		lastErr = zerr.With(zerr.With(zerr.Wrap(err, domain.ErrTrashFailed.Error()),
			"helper", h.name), "output", strings.TrimSpace(string(out)))
	}

	if lastErr != nil {
		return lastErr
	}
	return domain.ErrTrashUnavailable
}
