package reports

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const maxChartWindow = 365

type Handler struct {
	analyzer      *Analyzer
	defaultWindow int
}

func NewHandler(analyzer *Analyzer, defaultWindow int) *Handler {
	return &Handler{
		analyzer:      analyzer,
		defaultWindow: defaultWindow,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/reports/series", handler.HandleSeries).Methods("GET", "OPTIONS").Name("reports-series")
	r.HandleFunc("/reports/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("reports-summary")
	r.HandleFunc("/reports/history", handler.HandleHistory).Methods("GET", "OPTIONS").Name("reports-history")
	r.HandleFunc("/reports/calendar/{year}/{month}", handler.HandleCalendar).Methods("GET", "OPTIONS").Name("reports-calendar")
	r.HandleFunc("/reports/exercise/{name}/progress", handler.HandleExerciseProgress).Methods("GET", "OPTIONS").Name("reports-exercise-progress")
}

func (handler *Handler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.series")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	window := handler.defaultWindow
	if windowParam := r.URL.Query().Get("window"); windowParam != "" {
		var err error
		window, err = strconv.Atoi(windowParam)
		if err != nil || window < 0 || window > maxChartWindow {
			http.Error(w, "invalid window", http.StatusBadRequest)
			return
		}
	}

	points, err := handler.analyzer.Series(ctx, userID, window)
	if err != nil {
		log.Errorf("failed to get volume series for user %s: %s", userID, err)
		http.Error(w, "failed to get series", http.StatusInternalServerError)
		return
	}
	writeJSON(w, points)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.summary")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	summary, err := handler.analyzer.Summary(ctx, userID)
	if err != nil {
		log.Errorf("failed to get summary for user %s: %s", userID, err)
		http.Error(w, "failed to get summary", http.StatusInternalServerError)
		return
	}
	writeJSON(w, summary)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.history")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	entries, err := handler.analyzer.History(ctx, userID)
	if err != nil {
		log.Errorf("failed to get history entries for user %s: %s", userID, err)
		http.Error(w, "failed to get history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, entries)
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.calendar")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil || year < 1970 || year > 9999 {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	loc := time.UTC
	if tz := r.URL.Query().Get("tz"); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			http.Error(w, "invalid tz", http.StatusBadRequest)
			return
		}
	}

	days, err := handler.analyzer.Calendar(ctx, userID, year, time.Month(month), loc)
	if err != nil {
		log.Errorf("failed to get calendar for user %s: %s", userID, err)
		http.Error(w, "failed to get calendar", http.StatusInternalServerError)
		return
	}
	writeJSON(w, days)
}

func (handler *Handler) HandleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.exercise_progress")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	exerciseName := mux.Vars(r)["name"]
	if exerciseName == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	points, err := handler.analyzer.ExerciseProgress(ctx, userID, exerciseName)
	if err != nil {
		log.Errorf("failed to get progress of %s for user %s: %s", exerciseName, userID, err)
		http.Error(w, "failed to get exercise progress", http.StatusInternalServerError)
		return
	}
	writeJSON(w, points)
}

func writeJSON(w http.ResponseWriter, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal report: %s", err)
		http.Error(w, "failed to build report", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
