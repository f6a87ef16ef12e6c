//go:build !tinygo && !cgo

package hal

import "fmt"

// RunWindow needs ebiten, which needs cgo on most desktops. Without it the
// headless and terminal runners still work.
func RunWindow(_ func(h HAL) func() error) error {
	return fmt.Errorf("hal: window: %w without cgo (use -headless or -term, or build with CGO_ENABLED=1)", ErrNotImplemented)
}
