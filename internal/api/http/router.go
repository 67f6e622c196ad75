package http

import (
	"net/http"

	"cycleclub-backend/internal/security"
	"cycleclub-backend/internal/service"
	"cycleclub-backend/internal/storage"

	"github.com/gorilla/mux"
)

// NewRouter wires all HTTP routes. Public routes: auth, tier catalog, file
// serving. Authenticated routes: registration submit and lookup. Admin
// routes: listing, status review, stats.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	regSvc service.RegistrationService,
	store storage.Storage,
) *mux.Router {
	router := mux.NewRouter()

	authHandler := NewAuthHandler(authSvc)
	regHandler := NewRegistrationHandler(regSvc)
	adminHandler := NewAdminHandler(regSvc)
	fileHandler := NewFileHandler(store)
	auth := NewAuthMiddleware(tokens)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/signin", authHandler.Signin).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	api.HandleFunc("/tiers", regHandler.ListTiers).Methods("GET")

	api.Handle("/registrations", auth.Require(http.HandlerFunc(regHandler.Submit))).Methods("POST")
	api.Handle("/registrations/me", auth.Require(http.HandlerFunc(regHandler.Me))).Methods("GET")

	api.Handle("/admin/registrations", auth.RequireAdmin(authSvc, http.HandlerFunc(adminHandler.ListRegistrations))).Methods("GET")
	api.Handle("/admin/registrations/{id}/status", auth.RequireAdmin(authSvc, http.HandlerFunc(adminHandler.UpdateStatus))).Methods("PATCH")
	api.Handle("/admin/stats", auth.RequireAdmin(authSvc, http.HandlerFunc(adminHandler.Stats))).Methods("GET")

	router.HandleFunc("/files/{key:.+}", fileHandler.Serve).Methods("GET")

	return router
}
