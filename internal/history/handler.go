package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=history_test

type historyRepo interface {
	List(ctx context.Context, userID string) ([]Record, error)
	Get(ctx context.Context, userID, recordID string) (*Record, error)
}

type Handler struct {
	repo historyRepo
}

func NewHandler(repo historyRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/history", handler.HandleList).Methods("GET", "OPTIONS").Name("list-history")
	r.HandleFunc("/history/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-history")
}

// HandleList returns the user's workouts, newest first.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.list")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	records, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("failed to list history for user %s: %s", userID, err)
		http.Error(w, "failed to get history", http.StatusInternalServerError)
		return
	}

	newestFirst := make([]Record, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		newestFirst = append(newestFirst, records[i])
	}

	recordsJson, err := json.Marshal(newestFirst)
	if err != nil {
		log.Errorf("failed to marshal history: %s", err)
		http.Error(w, "failed to get history", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recordsJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.get")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	recordID := mux.Vars(r)["id"]
	if recordID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	record, err := handler.repo.Get(ctx, userID, recordID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "history record not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get history record %s: %s", recordID, err)
		http.Error(w, "failed to get history record", http.StatusInternalServerError)
		return
	}

	recordJson, err := json.Marshal(record)
	if err != nil {
		log.Errorf("failed to marshal history record: %s", err)
		http.Error(w, "failed to get history record", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recordJson)
}
