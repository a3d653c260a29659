package mcp

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowInfo describes one managed window.
type WindowInfo struct {
	ID        int  `json:"id"`
	X         int  `json:"x"`
	Y         int  `json:"y"`
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	Border    int  `json:"border"`
	HasBorder bool `json:"has_border"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Height        int          `json:"height"`
	RowStride     int          `json:"row_stride"`
	BytesPerPixel int          `json:"bytes_per_pixel"`
	Windows       []WindowInfo `json:"windows"`
}

// FillWindowInput is the input for the fill_window tool.
type FillWindowInput struct {
	ID    int    `json:"id" jsonschema:"required,Window id (position in the configured window list)"`
	Color string `json:"color" jsonschema:"required,Fill color as #rrggbb hex"`
}

// FillBorderInput is the input for the fill_border tool.
type FillBorderInput struct {
	ID    int    `json:"id" jsonschema:"required,Window id (position in the configured window list)"`
	Color string `json:"color" jsonschema:"required,Border color as #rrggbb hex"`
}

// FillOutput is the output for the fill tools.
type FillOutput struct {
	ID     int    `json:"id"`
	Pixels int    `json:"pixels"`
	Region string `json:"region"`
}

// ClearInput is the input for the clear tool.
type ClearInput struct {
	Color string `json:"color,omitempty" jsonschema:"Color as #rrggbb hex (default: black)"`
}

// DrawInput is the input for the draw tool.
type DrawInput struct{}

// DrawOutput is the output for the draw tool.
type DrawOutput struct {
	Bytes int `json:"bytes"`
}
