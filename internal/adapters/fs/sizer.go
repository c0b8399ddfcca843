package fs

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/fclean/internal/core/ports"
)

var _ ports.Sizer = (*Sizer)(nil)

// Sizer sums file lengths from directory metadata without reading content.
type Sizer struct{}

// NewSizer creates a new Sizer.
func NewSizer() *Sizer {
	return &Sizer{}
}

// Size returns the length of a regular file, or the summed length of every regular file
// beneath a directory. Symlinks are never followed and unreadable entries count as zero.
func (s *Sizer) Size(path string) int64 {
	info, err := os.Lstat(path)
	if err != nil {
		return 0
	}
	if info.Mode().IsRegular() {
		return info.Size()
	}
	if !info.IsDir() {
		return 0
	}

	var total int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		total += fi.Size()
		return nil
	})
	return total
}
