package fbdev

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/fbdash/internal/compose"
)

// X11Preview is a Device that renders frames into an X window instead
// of a console framebuffer. It reports a 4-byte BGRX geometry matching
// the X server's 24-bit little-endian layout, so composited frames copy
// straight into the backing image. SetMode is a no-op: a windowed
// preview never leaves text mode.
type X11Preview struct {
	xu   *xgbutil.XUtil
	img  *xgraphics.Image
	win  *xwindow.Window
	geom compose.Geometry
}

// OpenX11Preview connects to the X server and shows an empty preview
// window. Width and height of 0 mean the root screen's size.
func OpenX11Preview(width, height int) (*X11Preview, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	if width <= 0 || height <= 0 {
		scr := xu.Screen()
		width = int(scr.WidthInPixels)
		height = int(scr.HeightInPixels)
	}

	img := xgraphics.New(xu, image.Rect(0, 0, width, height))
	win := img.XShowExtra("fbdash preview", true)

	// Keep expose/close events flowing while the caller blocks on stdin.
	go xevent.Main(xu)

	return &X11Preview{
		xu:   xu,
		img:  img,
		win:  win,
		geom: compose.Geometry{Height: height, RowStride: 4 * width, BytesPerPixel: 4},
	}, nil
}

func (p *X11Preview) Geometry() compose.Geometry { return p.geom }

func (p *X11Preview) WriteFrame(buf []byte) error {
	if len(buf) != p.geom.BufferSize() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFrameSize, len(buf), p.geom.BufferSize())
	}
	// Frames and xgraphics images share the BGRx layout; only the alpha
	// byte needs forcing to opaque.
	for i := 0; i+3 < len(buf); i += 4 {
		p.img.Pix[i] = buf[i]
		p.img.Pix[i+1] = buf[i+1]
		p.img.Pix[i+2] = buf[i+2]
		p.img.Pix[i+3] = 0xff
	}
	p.img.XDraw()
	p.img.XPaint(p.win.Id)
	return nil
}

func (p *X11Preview) SetMode(Mode) error { return nil }

func (p *X11Preview) Close() error {
	xevent.Quit(p.xu)
	p.img.Destroy()
	p.win.Destroy()
	p.xu.Conn().Close()
	return nil
}
