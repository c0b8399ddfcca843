package config

import (
	"io/fs"
	"os"
)

// FileSystem is the read-only view of the disk the profile loader needs.
type FileSystem interface {
	// Stat reports whether the profile file exists and what it is.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile returns the raw YAML document.
	ReadFile(path string) ([]byte, error)
}

// OSFS reads profile files from the local disk.
type OSFS struct{}

// NewOSFS creates an OSFS.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat wraps os.Stat.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile wraps os.ReadFile.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is the user's own config file
	return os.ReadFile(path)
}
