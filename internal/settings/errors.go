package settings

import (
	"fmt"

	"github.com/containerd/errdefs"
)

var (
	ErrConfigNotFound = fmt.Errorf("config file not found: %w", errdefs.ErrNotFound)
	ErrInvalidConfig  = fmt.Errorf("invalid config file: %w", errdefs.ErrInvalidArgument)
)
