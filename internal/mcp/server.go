// Package mcp exposes a live compositor over the Model Context
// Protocol, so agents can fill windows and push frames without going
// through the CLI.
package mcp

import (
	"context"
	"fmt"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/fbdash/internal/config"
	"github.com/1broseidon/fbdash/internal/manager"
)

const (
	ServerName    = "fbdash"
	ServerVersion = "0.1.0"
)

// Server is the MCP server over a single Manager. The compositor has
// one logical writer, so every tool call runs under the server mutex;
// draw therefore observes all fills issued before it.
type Server struct {
	mcpServer *mcpsdk.Server

	mu  sync.Mutex
	mgr *manager.Manager
}

// NewServer wraps mgr in an MCP server with the fill/draw tool set.
func NewServer(mgr *manager.Manager) *Server {
	s := &Server{mgr: mgr}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the managed windows with their geometry (id, location, size, border thickness) and the display geometry they are laid out on. Window ids are positional and stable for the life of the server.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "fill_window",
		Description: "Fill the interior of a window with a solid color. The change is composited in memory; call draw to present it on the display.",
	}, s.handleFillWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "fill_border",
		Description: "Fill a window's border frame with a solid color. No-op for windows configured without a border.",
	}, s.handleFillBorder)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "clear",
		Description: "Fill the entire display buffer with a solid color (default black), regardless of window coverage.",
	}, s.handleClear)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "draw",
		Description: "Present the composited buffer on the display device.",
	}, s.handleDraw)
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	geom := s.mgr.Geometry()
	out := ListWindowsOutput{
		Height:        geom.Height,
		RowStride:     geom.RowStride,
		BytesPerPixel: geom.BytesPerPixel,
	}
	for id := 0; id < s.mgr.Len(); id++ {
		w, err := s.mgr.Window(id)
		if err != nil {
			return nil, ListWindowsOutput{}, err
		}
		info := WindowInfo{
			ID:        id,
			Width:     w.Width,
			Height:    w.Height,
			HasBorder: w.Border != nil,
		}
		if w.Border != nil {
			info.X = w.Border.Top.Location.X
			info.Y = w.Border.Top.Location.Y
			info.Border = w.Border.Top.Height
		} else {
			info.X = w.Main.Location.X
			info.Y = w.Main.Location.Y
		}
		out.Windows = append(out.Windows, info)
	}
	return nil, out, nil
}

func (s *Server) handleFillWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args FillWindowInput) (*mcpsdk.CallToolResult, FillOutput, error) {
	col, err := config.ParseColor(args.Color)
	if err != nil {
		return nil, FillOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mgr.Fill(args.ID, col); err != nil {
		return nil, FillOutput{}, fmt.Errorf("fill window: %w", err)
	}
	w, err := s.mgr.Window(args.ID)
	if err != nil {
		return nil, FillOutput{}, err
	}
	return nil, FillOutput{
		ID:     args.ID,
		Pixels: w.Main.Width * w.Main.Height,
		Region: "interior",
	}, nil
}

func (s *Server) handleFillBorder(_ context.Context, _ *mcpsdk.CallToolRequest, args FillBorderInput) (*mcpsdk.CallToolResult, FillOutput, error) {
	col, err := config.ParseColor(args.Color)
	if err != nil {
		return nil, FillOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mgr.FillBorder(args.ID, col); err != nil {
		return nil, FillOutput{}, fmt.Errorf("fill border: %w", err)
	}
	w, err := s.mgr.Window(args.ID)
	if err != nil {
		return nil, FillOutput{}, err
	}
	pixels := 0
	if w.Border != nil {
		pixels = w.Width*w.Height - w.Main.Width*w.Main.Height
	}
	return nil, FillOutput{
		ID:     args.ID,
		Pixels: pixels,
		Region: "border",
	}, nil
}

func (s *Server) handleClear(_ context.Context, _ *mcpsdk.CallToolRequest, args ClearInput) (*mcpsdk.CallToolResult, FillOutput, error) {
	spec := args.Color
	if spec == "" {
		spec = "#000000"
	}
	col, err := config.ParseColor(spec)
	if err != nil {
		return nil, FillOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mgr.Clear(col); err != nil {
		return nil, FillOutput{}, fmt.Errorf("clear: %w", err)
	}
	geom := s.mgr.Geometry()
	return nil, FillOutput{
		ID:     -1,
		Pixels: geom.Columns() * geom.Height,
		Region: "display",
	}, nil
}

func (s *Server) handleDraw(_ context.Context, _ *mcpsdk.CallToolRequest, _ DrawInput) (*mcpsdk.CallToolResult, DrawOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mgr.Draw(); err != nil {
		return nil, DrawOutput{}, err
	}
	return nil, DrawOutput{Bytes: len(s.mgr.Buffer())}, nil
}
