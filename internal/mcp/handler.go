package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/catalog"

	"github.com/mark3labs/mcp-go/mcp"
	log "github.com/sirupsen/logrus"
)

const (
	defaultHistoryLimit = 20
	defaultSeriesWindow = 10
	maxSeriesWindow     = 365
)

// Handler parses tool arguments, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) GetSchema(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := h.service.GetSchema(ctx)
	if err != nil {
		return mcp.NewToolResultError("Error fetching schema: " + err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (h *Handler) GetHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError(ErrNoUser.Error()), nil
	}

	limit := req.GetInt("limit", defaultHistoryLimit)
	entries, err := h.service.GetHistory(ctx, userID, limit)
	if err != nil {
		log.Errorf("mcp get_history: %s", err)
		return mcp.NewToolResultError("Error fetching history: " + err.Error()), nil
	}
	return jsonResult(entries)
}

func (h *Handler) GetVolumeSeries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError(ErrNoUser.Error()), nil
	}

	window := req.GetInt("window", defaultSeriesWindow)
	if window <= 0 || window > maxSeriesWindow {
		return mcp.NewToolResultError("Invalid window: must be between 1 and 365"), nil
	}

	series, err := h.service.GetVolumeSeries(ctx, userID, window)
	if err != nil {
		log.Errorf("mcp get_volume_series: %s", err)
		return mcp.NewToolResultError("Error fetching volume series: " + err.Error()), nil
	}
	return jsonResult(series)
}

func (h *Handler) GetSummary(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError(ErrNoUser.Error()), nil
	}

	summary, err := h.service.GetSummary(ctx, userID)
	if err != nil {
		log.Errorf("mcp get_summary: %s", err)
		return mcp.NewToolResultError("Error fetching summary: " + err.Error()), nil
	}
	return jsonResult(summary)
}

func (h *Handler) GetExerciseProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError(ErrNoUser.Error()), nil
	}

	exercise, err := req.RequireString("exercise")
	if err != nil || exercise == "" {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	progress, err := h.service.GetExerciseProgress(ctx, userID, exercise)
	if err != nil {
		log.Errorf("mcp get_exercise_progress: %s", err)
		return mcp.NewToolResultError("Error fetching exercise progress: " + err.Error()), nil
	}
	return jsonResult(progress)
}

func (h *Handler) GetExerciseCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := catalog.ListParams{
		Query: req.GetString("query", ""),
	}
	if rawCategory := req.GetString("category", ""); rawCategory != "" {
		category, err := catalog.ParseCategory(rawCategory)
		if err != nil {
			return mcp.NewToolResultError("Invalid category: " + rawCategory), nil
		}
		params.Category = category
	}

	entries, err := h.service.GetExerciseCatalog(ctx, params)
	if err != nil {
		log.Errorf("mcp get_exercise_catalog: %s", err)
		return mcp.NewToolResultError("Error fetching exercise catalog: " + err.Error()), nil
	}
	return jsonResult(entries)
}

func (h *Handler) GetPlans(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError(ErrNoUser.Error()), nil
	}

	userPlans, err := h.service.GetPlans(ctx, userID)
	if err != nil {
		log.Errorf("mcp get_plans: %s", err)
		return mcp.NewToolResultError("Error fetching plans: " + err.Error()), nil
	}
	return jsonResult(userPlans)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("Error encoding response: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}
