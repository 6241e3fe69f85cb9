package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

type plansRepo interface {
	Add(ctx context.Context, plan Plan) (*Plan, error)
	Get(ctx context.Context, userID, planID string) (*Plan, error)
	List(ctx context.Context, userID string) ([]Plan, error)
	Update(ctx context.Context, plan Plan) error
	Delete(ctx context.Context, userID, planID string) error
}

type DeletePlanResponse struct {
	DeletedID string `json:"deletedId"`
}

type UpdatePlanResponse struct {
	UpdatedID string `json:"updatedId"`
}

type Handler struct {
	repo      plansRepo
	NowFunc   func() time.Time
	NewIDFunc func() string
}

func NewHandler(repo plansRepo) *Handler {
	return &Handler{
		repo:      repo,
		NowFunc:   time.Now,
		NewIDFunc: uuid.NewString,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/plans", handler.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	r.HandleFunc("/plans", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-plan")
	r.HandleFunc("/plans/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/plans/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-plan")
	r.HandleFunc("/plans/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-plan")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	plans, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("failed to list plans for user %s: %s", userID, err)
		http.Error(w, "failed to get plans", http.StatusInternalServerError)
		return
	}
	if plans == nil {
		plans = []Plan{}
	}

	plansJson, err := json.Marshal(plans)
	if err != nil {
		log.Errorf("failed to marshal plans: %s", err)
		http.Error(w, "failed to get plans", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, plansJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	planID := mux.Vars(r)["id"]
	if planID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	plan, err := handler.repo.Get(ctx, userID, planID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get plan %s: %s", planID, err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal plan: %s", err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, planJson)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.new")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	plan, ok := decodePlan(w, r)
	if !ok {
		return
	}

	now := handler.NowFunc().UTC()
	plan.ID = handler.NewIDFunc()
	plan.UserID = userID
	plan.CreatedAt = now
	plan.UpdatedAt = now

	addedPlan, err := handler.repo.Add(ctx, plan)
	if err != nil {
		log.Errorf("failed to add plan [%s] for user %s: %s", plan.Name, userID, err)
		http.Error(w, "error, failed to add plan", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(addedPlan)
	if err != nil {
		log.Errorf("failed to marshal new plan: %s", err)
		http.Error(w, "error, failed to add plan", http.StatusInternalServerError)
		return
	}

	log.Debugf("new plan added: %s", addedPlan.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.update")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	planID := mux.Vars(r)["id"]
	if planID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	plan, ok := decodePlan(w, r)
	if !ok {
		return
	}
	plan.ID = planID
	plan.UserID = userID
	plan.UpdatedAt = handler.NowFunc().UTC()

	if err := handler.repo.Update(ctx, plan); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update plan %s: %s", planID, err)
		http.Error(w, "error, failed to update plan", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(UpdatePlanResponse{UpdatedID: planID})
	if err != nil {
		log.Errorf("failed to marshal update plan response: %s", err)
		http.Error(w, "error, failed to update plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	planID := mux.Vars(r)["id"]
	if planID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, planID); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete plan %s: %s", planID, err)
		http.Error(w, "error, failed to delete plan", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeletePlanResponse{DeletedID: planID})
	if err != nil {
		log.Errorf("failed to marshal delete plan response: %s", err)
		http.Error(w, "error, failed to delete plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func decodePlan(w http.ResponseWriter, r *http.Request) (Plan, bool) {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return Plan{}, false
	}

	var plan Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("plan, unmarshal json params: %s", err)
		http.Error(w, "invalid plan payload", http.StatusBadRequest)
		return Plan{}, false
	}

	plan.Normalize()
	if err := plan.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return Plan{}, false
	}

	return plan, true
}
