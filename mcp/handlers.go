package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ludo-technologies/datestamp/domain"
	"github.com/ludo-technologies/datestamp/internal/stamp"
	"github.com/mark3labs/mcp-go/mcp"
)

// HandlerSet exposes MCP tool handlers with shared dependencies.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a handler set.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	if deps == nil {
		deps = NewDependencies(nil, nil)
	}
	return &HandlerSet{deps: deps}
}

// HandleStampName handles the stamp_name tool
func (h *HandlerSet) HandleStampName(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	name, ok := args["name"].(string)
	if !ok {
		return mcp.NewToolResultError("name parameter is required and must be a string"), nil
	}

	opts := h.deps.DefaultStampOptions()
	if v, ok := args["suffix"].(bool); ok {
		opts.Suffix = v
	}
	if v, ok := args["time"].(bool); ok {
		opts.IncludeTime = v
	}

	report, err := h.deps.BuildNameUseCase().Execute(domain.NameRequest{
		Names: []string{name},
		Stamp: opts,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("stamping failed: %v", err)), nil
	}

	result := report.Results[0]
	return jsonResult(map[string]interface{}{
		"name":         result.Source,
		"stamped_name": result.Target,
		"stamp":        result.Stamp,
		"suffix":       opts.Suffix,
		"time":         opts.IncludeTime,
	})
}

// HandleExtractStamp handles the extract_stamp tool
func (h *HandlerSet) HandleExtractStamp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	name, ok := args["name"].(string)
	if !ok {
		return mcp.NewToolResultError("name parameter is required and must be a string"), nil
	}

	response := map[string]interface{}{
		"name":  name,
		"found": false,
	}
	if m, found := stamp.FindStamp(name); found {
		stripped, _ := stamp.ExtractStamp(name)
		response["found"] = true
		response["stripped"] = stripped
		response["stamp"] = m.Text
		response["start"] = m.Start
		response["end"] = m.End
	} else {
		response["stripped"] = name
	}

	return jsonResult(response)
}

// HandleSplitFilename handles the split_filename tool
func (h *HandlerSet) HandleSplitFilename(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	name, ok := args["name"].(string)
	if !ok {
		return mcp.NewToolResultError("name parameter is required and must be a string"), nil
	}

	parts := stamp.SplitFilename(name)
	return jsonResult(map[string]interface{}{
		"name":      name,
		"base_name": parts.BaseName,
		"extension": parts.Extension,
	})
}

// jsonResult marshals v into a text tool result
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
