//go:build !cgo

package viewer

import (
	"errors"
	"image"
)

func Show(_ *image.RGBA, _ string) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
