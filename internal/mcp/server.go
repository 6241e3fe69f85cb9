package mcp

import (
	"context"
	"net/http"

	"github.com/2beens/gymtracker/internal/auth"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var (
	toolGetSchema = mcp.NewTool("get_gymtracker_schema",
		mcp.WithDescription("Returns the DB schema of the gymtracker tables (users, plans, history, exercise_catalog): columns, types, nullable, default."),
	)
	toolGetHistory = mcp.NewTool("get_history",
		mcp.WithDescription("Returns finished workouts, newest first, each with its training volume (sum of weight*reps over completed sets) and completed/total set counts."),
		mcp.WithNumber("limit", mcp.Description("Max number of workouts to return. Defaults to 20; 0 returns all.")),
	)
	toolGetVolumeSeries = mcp.NewTool("get_volume_series",
		mcp.WithDescription("Returns the last N workouts, oldest first, as chart points: date, duration in minutes, volume."),
		mcp.WithNumber("window", mcp.Description("Number of most recent workouts (1-365). Defaults to 10.")),
	)
	toolGetSummary = mcp.NewTool("get_summary",
		mcp.WithDescription("Returns dashboard totals: workouts, minutes, volume, workouts in the last 7 days, last workout and most used plan."),
	)
	toolGetExerciseProgress = mcp.NewTool("get_exercise_progress",
		mcp.WithDescription("Follows one exercise across all workouts, oldest first: max weight, completed reps and sets, volume per workout."),
		mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name exactly as in the plan (e.g. Squat)")),
	)
	toolGetExerciseCatalog = mcp.NewTool("get_exercise_catalog",
		mcp.WithDescription("Returns reference exercises with their muscle-group category and an optional tutorial url."),
		mcp.WithString("category", mcp.Description("Filter by category"),
			mcp.Enum("chest", "back", "shoulders", "legs", "biceps", "triceps", "abs", "forearms"),
		),
		mcp.WithString("query", mcp.Description("Case-insensitive substring of the exercise name")),
	)
	toolGetPlans = mcp.NewTool("get_plans",
		mcp.WithDescription("Returns the user's workout plans with their exercises and set/rep targets."),
	)
)

// NewServer builds the MCP server with the read-only gymtracker tools.
func NewServer(service contextService, version string) *server.MCPServer {
	h := NewHandler(service)
	s := server.NewMCPServer("gymtracker-context", version,
		server.WithToolCapabilities(false),
		server.WithInstructions("Gymtracker workout data. All tools are read-only and scoped to one user."),
	)

	s.AddTools(
		server.ServerTool{Tool: toolGetSchema, Handler: h.GetSchema},
		server.ServerTool{Tool: toolGetHistory, Handler: h.GetHistory},
		server.ServerTool{Tool: toolGetVolumeSeries, Handler: h.GetVolumeSeries},
		server.ServerTool{Tool: toolGetSummary, Handler: h.GetSummary},
		server.ServerTool{Tool: toolGetExerciseProgress, Handler: h.GetExerciseProgress},
		server.ServerTool{Tool: toolGetExerciseCatalog, Handler: h.GetExerciseCatalog},
		server.ServerTool{Tool: toolGetPlans, Handler: h.GetPlans},
	)

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP; the user id set by the auth middleware is
// carried into the tool handlers.
func NewHTTPHandler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s,
		server.WithHTTPContextFunc(func(ctx context.Context, r *http.Request) context.Context {
			if userID, ok := auth.UserIDFromContext(r.Context()); ok {
				return auth.ContextWithUserID(ctx, userID)
			}
			return ctx
		}),
	)
}

// ServeStdio runs the MCP server over stdin/stdout for a single, fixed user.
func ServeStdio(s *server.MCPServer, userID string) error {
	return server.ServeStdio(s,
		server.WithStdioContextFunc(func(ctx context.Context) context.Context {
			return auth.ContextWithUserID(ctx, userID)
		}),
	)
}
