package openssl

import (
	"errors"
	"fmt"

	"github.com/containerd/errdefs"
)

var (
	ErrBuild             = errors.New("openssl build failed")
	ErrUnsupportedTriple = fmt.Errorf("unsupported target triple: %w", errdefs.ErrNotImplemented)
	ErrVersionNotFound   = fmt.Errorf("openssl version not found: %w", errdefs.ErrNotFound)
	ErrMissingSource     = fmt.Errorf("openssl source directory not set: %w", errdefs.ErrFailedPrecondition)
)
