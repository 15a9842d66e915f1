package archive

import "errors"

var (
	ErrArchive        = errors.New("archive write failed")
	ErrDuplicateEntry = errors.New("duplicate archive entry")
	ErrMissingDir     = errors.New("archive directory entry not written")
	ErrClosed         = errors.New("archive already closed")
)
