package target

import (
	"errors"
	"fmt"

	"github.com/containerd/errdefs"
)

var (
	ErrInvalidTarget = fmt.Errorf("invalid target list: %w", errdefs.ErrInvalidArgument)
	ErrUnknownTarget = fmt.Errorf("unknown target: %w", errdefs.ErrNotFound)
	ErrNoTargets     = errors.New("no targets selected")
)
