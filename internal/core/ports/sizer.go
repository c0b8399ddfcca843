package ports

// Sizer computes the on-disk size of a path from metadata only.
//
//go:generate mockgen -source=sizer.go -destination=mocks/mock_sizer.go -package=mocks
type Sizer interface {
	// Size returns the byte length of a file, or the summed length of every regular file
	// beneath a directory. Unreadable entries count as zero.
	Size(path string) int64
}
