package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/planchart/core"
	"github.com/huangsam/planchart/internal/contract"
	"github.com/huangsam/planchart/internal/dataset"
	"github.com/huangsam/planchart/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleListCharts(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	charts, err := core.GetChartCatalogue(ctx, dataset.NewBuiltin())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing charts failed: %v", err)), nil
	}

	enriched := schema.EnrichCharts(charts)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRenderChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	chartStr := request.GetString("chart", "")
	layout := request.GetString("gantt_layout", "")
	width := request.GetInt("width", 0)
	height := request.GetInt("height", 0)
	if t := request.GetString("title", ""); t != "" {
		cfg.Title = t
	}

	if err := contract.RevalidateRender(cfg, chartStr, layout, width, height); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid render parameters: %v", err)), nil
	}

	format := schema.OutputMode(request.GetString("format", string(schema.SVGOut)))
	if format != schema.SVGOut && format != schema.JSONOut {
		return mcp.NewToolResultError(fmt.Sprintf("invalid format '%s'. must be svg, json", format)), nil
	}

	res, svg, err := core.GetRenderResult(core.WithSuppressHeader(ctx), cfg, core.NewProvider(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rendering failed: %v", err)), nil
	}
	if format == schema.SVGOut {
		return mcp.NewToolResultText(svg), nil
	}

	jsonData, _ := json.MarshalIndent(res, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleHoverMark(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Series = request.GetString("series", "")
	cfg.Period = request.GetString("period", "")

	if err := contract.RevalidateRender(cfg, request.GetString("chart", ""), "", 0, 0); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid hover parameters: %v", err)), nil
	}

	result, err := core.GetHoverResult(core.WithSuppressHeader(ctx), cfg, core.NewProvider(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("hover failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
