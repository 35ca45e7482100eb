package http

import (
	"net/http"
	"time"

	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type placeholderGroup struct {
	prefix string
	name   string
	public bool
	// roles restricts the group to these roles; empty means any authenticated caller.
	roles []entity.Role
}

// placeholderGroups answer with a static message until their features land.
var placeholderGroups = []placeholderGroup{
	{prefix: "/patients", name: "Patient", roles: []entity.Role{entity.RoleDoctor}},
	{prefix: "/doctors", name: "Doctor"},
	{prefix: "/admin", name: "Admin"},
	{prefix: "/prescriptions", name: "Prescription"},
	{prefix: "/pharmacy", name: "Pharmacy", public: true},
	{prefix: "/orders", name: "Order"},
	{prefix: "/chat", name: "Chat"},
	{prefix: "/notifications", name: "Notification"},
}

type Router struct {
	router         *mux.Router
	log            *logrus.Logger
	authHandler    *handler.AuthHandler
	doctorHandler  *handler.DoctorHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	log *logrus.Logger,
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		log:            log,
		authHandler:    authHandler,
		doctorHandler:  doctorHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() http.Handler {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/profile", r.authHandler.Profile).Methods(http.MethodGet)

	// Doctor login (public); registered before the protected /doctors group
	for _, path := range []string{"/doctor/login", "/doctors/login", "/doctors/doctor/login"} {
		api.HandleFunc(path, r.doctorHandler.Login).Methods(http.MethodPost)
	}

	for _, group := range placeholderGroups {
		sub := api.PathPrefix(group.prefix).Subrouter()
		if !group.public {
			sub.Use(r.authMiddleware.Authenticate)
		}
		if len(group.roles) > 0 {
			sub.Use(middleware.RequireRole(group.roles...))
		}
		sub.HandleFunc("", handler.Placeholder(group.name)).Methods(http.MethodGet)
		sub.HandleFunc("/", handler.Placeholder(group.name)).Methods(http.MethodGet)
	}

	r.router.NotFoundHandler = http.HandlerFunc(r.notFound)

	// Wrapped outside mux so preflight, 404 and 405 responses carry CORS headers too.
	return r.corsMiddleware.Handle(middleware.RequestLogger(r.log)(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusNotFound, map[string]interface{}{
		"success": false,
		"message": "Route not found",
		"path":    req.URL.RequestURI(),
	})
}
