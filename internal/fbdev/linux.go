//go:build linux

package fbdev

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/1broseidon/fbdash/internal/compose"
)

// DefaultPath is the first framebuffer console device.
const DefaultPath = "/dev/fb0"

const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602

	kdSetMode  = 0x4b3a
	kdText     = 0x00
	kdGraphics = 0x01

	consolePath = "/dev/tty"
)

type fbBitfield struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

// fbVarScreenInfo mirrors struct fb_var_screeninfo from <linux/fb.h>.
type fbVarScreenInfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          fbBitfield
	Green        fbBitfield
	Blue         fbBitfield
	Transp       fbBitfield
	NonStd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	PixClock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HSyncLen     uint32
	VSyncLen     uint32
	Sync         uint32
	VMode        uint32
	Rotate       uint32
	Colorspace   uint32
	Reserved     [4]uint32
}

// fbFixScreenInfo mirrors struct fb_fix_screeninfo from <linux/fb.h> on
// 64-bit targets (smem_start and mmio_start are unsigned long).
type fbFixScreenInfo struct {
	ID           [16]byte
	SMemStart    uint64
	SMemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MMIOStart    uint64
	MMIOLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

// Framebuffer is a Device over a Linux framebuffer console device such
// as /dev/fb0. The frame memory is mapped once at open; WriteFrame is a
// single copy into the mapping. SetMode issues KDSETMODE on the
// controlling terminal, which is global console state.
type Framebuffer struct {
	file *os.File
	mem  []byte
	geom compose.Geometry
}

// Open acquires the framebuffer device at path and queries its
// geometry. An empty path means DefaultPath.
func Open(path string) (*Framebuffer, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", path, err)
	}

	var varInfo fbVarScreenInfo
	if err := ioctlPointer(f.Fd(), fbioGetVScreenInfo, unsafe.Pointer(&varInfo)); err != nil {
		f.Close()
		return nil, fmt.Errorf("query variable screen info for %s: %w", path, err)
	}
	var fixInfo fbFixScreenInfo
	if err := ioctlPointer(f.Fd(), fbioGetFScreenInfo, unsafe.Pointer(&fixInfo)); err != nil {
		f.Close()
		return nil, fmt.Errorf("query fixed screen info for %s: %w", path, err)
	}

	geom := compose.Geometry{
		Height:        int(varInfo.YRes),
		RowStride:     int(fixInfo.LineLength),
		BytesPerPixel: int(varInfo.BitsPerPixel / 8),
	}
	if err := geom.Validate(); err != nil {
		f.Close()
		return nil, fmt.Errorf("framebuffer %s reports unusable geometry: %w", path, err)
	}

	mem, err := unix.Mmap(int(f.Fd()), 0, int(fixInfo.SMemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap framebuffer %s: %w", path, err)
	}
	if len(mem) < geom.BufferSize() {
		unix.Munmap(mem)
		f.Close()
		return nil, fmt.Errorf("framebuffer %s maps %d bytes, geometry needs %d", path, len(mem), geom.BufferSize())
	}

	return &Framebuffer{file: f, mem: mem, geom: geom}, nil
}

func (fb *Framebuffer) Geometry() compose.Geometry { return fb.geom }

func (fb *Framebuffer) WriteFrame(buf []byte) error {
	if len(buf) != fb.geom.BufferSize() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFrameSize, len(buf), fb.geom.BufferSize())
	}
	copy(fb.mem, buf)
	return nil
}

func (fb *Framebuffer) SetMode(m Mode) error {
	tty, err := os.OpenFile(consolePath, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("open console %s: %w", consolePath, err)
	}
	defer tty.Close()

	kd := kdText
	if m == ModeGraphics {
		kd = kdGraphics
	}
	if err := unix.IoctlSetInt(int(tty.Fd()), kdSetMode, kd); err != nil {
		return fmt.Errorf("set console %s mode: %w", m, err)
	}
	return nil
}

func (fb *Framebuffer) Close() error {
	var first error
	if fb.mem != nil {
		if err := unix.Munmap(fb.mem); err != nil {
			first = fmt.Errorf("unmap framebuffer: %w", err)
		}
		fb.mem = nil
	}
	if err := fb.file.Close(); err != nil && first == nil {
		first = err
	}
	return first
}

func ioctlPointer(fd uintptr, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
