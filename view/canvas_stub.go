//go:build !ebiten

package view

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// ErrCanvasUnavailable is returned by RunCanvas in builds without the ebiten tag
var ErrCanvasUnavailable = errors.New("canvas mode requires building with the 'ebiten' tag")

// RunCanvas reports that the window host was not compiled in.
// Re-run with `go run -tags ebiten .` to enable it.
func RunCanvas(*model.Universe, model.RandomSource, utils.Config) error {
	return ErrCanvasUnavailable
}
