package catalog

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog_test

type catalogReader interface {
	List(ctx context.Context, params ListParams) ([]Entry, error)
	Categories(ctx context.Context) ([]CategoryCount, error)
}

type Handler struct {
	catalog catalogReader
}

func NewHandler(catalog catalogReader) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/categories", handler.HandleCategories).Methods("GET", "OPTIONS").Name("list-exercise-categories")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	params := ListParams{
		Query: r.URL.Query().Get("q"),
	}
	if categoryParam := r.URL.Query().Get("category"); categoryParam != "" {
		category, err := ParseCategory(categoryParam)
		if err != nil {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}
		params.Category = category
	}

	entries, err := handler.catalog.List(ctx, params)
	if err != nil {
		log.Errorf("failed to list exercise catalog: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("failed to marshal exercise catalog: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, entriesJson)
}

func (handler *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.categories")
	defer span.End()

	counts, err := handler.catalog.Categories(ctx)
	if err != nil {
		log.Errorf("failed to get exercise categories: %s", err)
		http.Error(w, "failed to get categories", http.StatusInternalServerError)
		return
	}

	countsJson, err := json.Marshal(counts)
	if err != nil {
		log.Errorf("failed to marshal exercise categories: %s", err)
		http.Error(w, "failed to get categories", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, countsJson)
}
