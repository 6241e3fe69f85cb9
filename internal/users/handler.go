package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/history"
	"github.com/2beens/gymtracker/internal/middleware"
	"github.com/2beens/gymtracker/internal/plans"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersService interface {
	Register(ctx context.Context, creds Credentials) (*User, error)
	Login(ctx context.Context, creds Credentials) (string, *User, error)
	Logout(ctx context.Context, token string) (bool, error)
	Get(ctx context.Context, userID string) (*User, error)
}

type plansLister interface {
	List(ctx context.Context, userID string) ([]plans.Plan, error)
}

type historyLister interface {
	List(ctx context.Context, userID string) ([]history.Record, error)
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Profile is the logged-in user with their plans and chronological history.
type Profile struct {
	User    *User            `json:"user"`
	Plans   []plans.Plan     `json:"plans"`
	History []history.Record `json:"history"`
}

type Handler struct {
	service        usersService
	plans          plansLister
	history        historyLister
	metricsManager *metrics.Manager
}

func NewHandler(
	service usersService,
	plans plansLister,
	history historyLister,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		service:        service,
		plans:          plans,
		history:        history,
		metricsManager: metricsManager,
	}
}

// SetupRoutes registers the user routes; with a non-nil rateLimiter the /a/* routes are rate limited per client ip.
func (handler *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
) {
	r.HandleFunc("/user", handler.HandleProfile).Methods("GET", "OPTIONS").Name("user-profile")

	authSubrouter := r.PathPrefix("/a").Subrouter()
	authSubrouter.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authSubrouter.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authSubrouter.HandleFunc("/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")

	if rateLimiter != nil {
		authSubrouter.Use(middleware.RateLimit(rateLimiter, "auth", allowedPerMin, handler.metricsManager))
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := handler.service.Register(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrUserExists):
			http.Error(w, "username taken", http.StatusConflict)
		default:
			log.Errorf("register user [%s]: %s", creds.Username, err)
			http.Error(w, "error, failed to register", http.StatusInternalServerError)
		}
		return
	}
	handler.metricsManager.CounterUsersRegistered.Inc()

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("failed to marshal new user: %s", err)
		http.Error(w, "error, failed to register", http.StatusInternalServerError)
		return
	}

	log.Printf("new user registered: %s", user.Username)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	token, user, err := handler.service.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			log.Tracef("login failed for [%s]", creds.Username)
			http.Error(w, "wrong username or password", http.StatusUnauthorized)
			return
		}
		log.Errorf("login [%s]: %s", creds.Username, err)
		http.Error(w, "error, failed to login", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(LoginResponse{Token: token, User: user})
	if err != nil {
		log.Errorf("failed to marshal login response: %s", err)
		http.Error(w, "error, failed to login", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	authToken := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.service.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "error, failed to logout", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.profile")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(w, r)
	if !ok {
		return
	}

	user, err := handler.service.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get user %s: %s", userID, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	userPlans, err := handler.plans.List(ctx, userID)
	if err != nil {
		log.Errorf("get plans of user %s: %s", userID, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}
	userHistory, err := handler.history.List(ctx, userID)
	if err != nil {
		log.Errorf("get history of user %s: %s", userID, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	profile := Profile{
		User:    user,
		Plans:   userPlans,
		History: userHistory,
	}
	if profile.Plans == nil {
		profile.Plans = []plans.Plan{}
	}
	if profile.History == nil {
		profile.History = []history.Record{}
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, profileJson)
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (Credentials, bool) {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return Credentials{}, false
	}

	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid credentials payload", http.StatusBadRequest)
		return Credentials{}, false
	}
	return creds, true
}
