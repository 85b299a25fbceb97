package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all datestamp MCP tools with the server
func RegisterTools(s *server.MCPServer, h *HandlerSet) {
	if h == nil {
		h = NewHandlerSet(nil)
	}

	// Tool 1: stamp_name - compose a stamped file name
	s.AddTool(mcp.NewTool("stamp_name",
		mcp.WithDescription("Return the date-stamped form of a file name using the current date"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("File name or path; only the last segment is stamped")),
		mcp.WithBoolean("suffix",
			mcp.Description("Place the stamp after the base name (default: from config, normally false)")),
		mcp.WithBoolean("time",
			mcp.Description("Append the time as HH.MM.SS (default: from config, normally false)")),
	), h.HandleStampName)

	// Tool 2: extract_stamp - strip a stamp from a name
	s.AddTool(mcp.NewTool("extract_stamp",
		mcp.WithDescription("Find the first date stamp in a file name and return the name without it"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("File name to inspect")),
	), h.HandleExtractStamp)

	// Tool 3: split_filename - base name and extension
	s.AddTool(mcp.NewTool("split_filename",
		mcp.WithDescription("Split the last segment of a path into base name and extension; dotfiles are all extension"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("File name or path")),
	), h.HandleSplitFilename)
}
