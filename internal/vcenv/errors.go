package vcenv

import (
	"errors"
	"fmt"

	"github.com/containerd/errdefs"
)

var (
	ErrMissingVCVarsAll = fmt.Errorf("need to provide %s with the path to vcvarsall.bat from a Visual Studio installation: %w", VCVarsAllVar, errdefs.ErrFailedPrecondition)
	ErrScriptFailed     = errors.New("environment script failed")
)
