//go:build !darwin && !windows && !linux && !freebsd && !netbsd && !openbsd && !dragonfly

package trash

import (
	"context"

	"go.trai.ch/fclean/internal/core/domain"
)

func (t *Trash) moveToTrash(_ context.Context, _ string) error {
	return domain.ErrTrashUnavailable
}
