//go:build !linux

package fbdev

import (
	"fmt"
	"runtime"
)

// DefaultPath is the first framebuffer console device.
const DefaultPath = "/dev/fb0"

// Open is unavailable off Linux; the framebuffer console is a Linux
// facility. Use the x11 or memory backend instead.
func Open(path string) (Device, error) {
	return nil, fmt.Errorf("framebuffer console devices are not supported on %s", runtime.GOOS)
}
