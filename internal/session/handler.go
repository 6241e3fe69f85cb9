package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/plans"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=session_test

type sessionService interface {
	Start(ctx context.Context, userID, planID string) (*State, error)
	Get(ctx context.Context, userID string) (*State, error)
	Navigate(ctx context.Context, userID string, direction Direction) (*State, error)
	UpdateSet(ctx context.Context, userID string, exerciseIndex, setIndex int, field Field, value float64) (*State, error)
	ToggleSetComplete(ctx context.Context, userID string, exerciseIndex, setIndex int) (*State, error)
	Finish(ctx context.Context, userID string) (*FinishResult, error)
	Cancel(ctx context.Context, userID string) error
}

type StartRequest struct {
	PlanID string `json:"planId"`
}

type NavigateRequest struct {
	Direction Direction `json:"direction"`
}

type UpdateSetRequest struct {
	ExerciseIndex int     `json:"exerciseIndex"`
	SetIndex      int     `json:"setIndex"`
	Field         Field   `json:"field"`
	Value         float64 `json:"value"`
}

type ToggleSetRequest struct {
	ExerciseIndex int `json:"exerciseIndex"`
	SetIndex      int `json:"setIndex"`
}

type Handler struct {
	service sessionService
	NowFunc func() time.Time
}

func NewHandler(service sessionService) *Handler {
	return &Handler{
		service: service,
		NowFunc: time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/session", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/session", handler.HandleCancel).Methods("DELETE", "OPTIONS").Name("cancel-session")
	r.HandleFunc("/session/start", handler.HandleStart).Methods("POST", "OPTIONS").Name("start-session")
	r.HandleFunc("/session/navigate", handler.HandleNavigate).Methods("POST", "OPTIONS").Name("navigate-session")
	r.HandleFunc("/session/set", handler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-session-set")
	r.HandleFunc("/session/set/toggle", handler.HandleToggleSet).Methods("POST", "OPTIONS").Name("toggle-session-set")
	r.HandleFunc("/session/finish", handler.HandleFinish).Methods("POST", "OPTIONS").Name("finish-session")
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.start")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	var req StartRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if req.PlanID == "" {
		http.Error(w, "error, plan id empty", http.StatusBadRequest)
		return
	}

	state, err := handler.service.Start(ctx, userID, req.PlanID)
	if err != nil {
		writeError(w, "start session", err)
		return
	}
	handler.writeView(w, state, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.get")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	state, err := handler.service.Get(ctx, userID)
	if err != nil {
		writeError(w, "get session", err)
		return
	}
	handler.writeView(w, state, http.StatusOK)
}

func (handler *Handler) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.navigate")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	var req NavigateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	state, err := handler.service.Navigate(ctx, userID, req.Direction)
	if err != nil {
		writeError(w, "navigate session", err)
		return
	}
	handler.writeView(w, state, http.StatusOK)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.update_set")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	var req UpdateSetRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	state, err := handler.service.UpdateSet(ctx, userID, req.ExerciseIndex, req.SetIndex, req.Field, req.Value)
	if err != nil {
		writeError(w, "update set", err)
		return
	}
	handler.writeView(w, state, http.StatusOK)
}

func (handler *Handler) HandleToggleSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.toggle_set")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	var req ToggleSetRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	state, err := handler.service.ToggleSetComplete(ctx, userID, req.ExerciseIndex, req.SetIndex)
	if err != nil {
		writeError(w, "toggle set", err)
		return
	}
	handler.writeView(w, state, http.StatusOK)
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.finish")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	result, err := handler.service.Finish(ctx, userID)
	if err != nil {
		writeError(w, "finish session", err)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal finish result: %s", err)
		http.Error(w, "workout saved, failed to build response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

func (handler *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.cancel")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := handler.service.Cancel(ctx, userID); err != nil {
		writeError(w, "cancel session", err)
		return
	}
	pkg.WriteTextResponseOK(w, "cancelled")
}

func (handler *Handler) writeView(w http.ResponseWriter, state *State, status int) {
	viewJson, err := json.Marshal(NewView(state, handler.NowFunc()))
	if err != nil {
		log.Errorf("failed to marshal session view: %s", err)
		http.Error(w, "failed to build session view", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, viewJson, status)
}

func decodeRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Tracef("session, unmarshal json params: %s", err)
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, op string, err error) {
	var collaboratorErr *CollaboratorError
	switch {
	case errors.Is(err, ErrNoActiveSession):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, plans.ErrPlanNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrMissingPlan):
		http.Error(w, ErrMissingPlan.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrIndexOutOfRange),
		errors.Is(err, ErrInvalidDirection),
		errors.Is(err, ErrInvalidField):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &collaboratorErr):
		log.Errorf("%s: %s", op, err)
		http.Error(w, "storage unavailable, please retry", http.StatusBadGateway)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, "+op+" failed", http.StatusInternalServerError)
	}
}
