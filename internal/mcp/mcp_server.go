// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/planchart/internal/contract"
	"github.com/huangsam/planchart/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Planchart MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Planchart Rendering Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}
	kinds := chartKinds()

	// --- 1. Tool: list_charts ---
	s.AddTool(mcp.NewTool("list_charts",
		mcp.WithDescription("List the chart kinds that can be rendered, with their default size and sample series."),
	), h.handleListCharts)

	// --- 2. Tool: render_chart ---
	s.AddTool(mcp.NewTool("render_chart",
		mcp.WithDescription("Render a plan chart from its dataset as an SVG document or as JSON marks."),
		mcp.WithString("chart", mcp.Description("The chart kind to render."), mcp.Required(), mcp.Enum(kinds...)),
		mcp.WithString("format", mcp.Description("Result format. Defaults to 'svg'."), mcp.Enum(string(schema.SVGOut), string(schema.JSONOut))),
		mcp.WithNumber("width", mcp.Description("Surface width in pixels (defaults to the chart's own width).")),
		mcp.WithNumber("height", mcp.Description("Surface height in pixels (defaults to the chart's own height).")),
		mcp.WithString("gantt_layout", mcp.Description("How Gantt rows place their series."), mcp.Enum(string(schema.OverlayLayout), string(schema.SubdivideLayout))),
		mcp.WithString("title", mcp.Description("Replace the dataset title.")),
	), h.handleRenderChart)

	// --- 3. Tool: hover_mark ---
	s.AddTool(mcp.NewTool("hover_mark",
		mcp.WithDescription("Simulate a pointer entering, moving over and leaving one mark, reporting the tooltip after each event."),
		mcp.WithString("chart", mcp.Description("The chart kind to render."), mcp.Required(), mcp.Enum(kinds...)),
		mcp.WithString("series", mcp.Description("Series label or key of the mark (defaults to the first hoverable mark).")),
		mcp.WithString("period", mcp.Description("Period of the mark (e.g., '2022', 'Apr').")),
	), h.handleHoverMark)

	return s
}

// StartMCPServer starts the Planchart MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}

func chartKinds() []string {
	kinds := make([]string, len(schema.AllChartKinds))
	for i, kind := range schema.AllChartKinds {
		kinds[i] = string(kind)
	}
	return kinds
}
