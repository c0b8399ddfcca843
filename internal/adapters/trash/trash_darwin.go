//go:build darwin

package trash

import (
	"context"
	"strings"

	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/zerr"
)

// moveToTrash asks Finder to delete the item so it lands in the user's Trash.
func (t *Trash) moveToTrash(ctx context.Context, path string) error {
	if _, err := t.lookPath("osascript"); err != nil {
		return zerr.With(domain.ErrTrashUnavailable, "helper", "osascript")
	}

	script := `tell application "Finder" to delete POSIX file "` + appleScriptQuote(path) + `"`
	out, err := t.run(ctx, "osascript", "-e", script)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTrashFailed.Error()), "output", strings.TrimSpace(string(out)))
	}
	return nil
}

func appleScriptQuote(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
