package handler

import (
	"net/http"

	"github.com/daybook-labs/auth-service/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, tokens *service.TokenService) {
	authHandler := NewAuthHandler(auth)

	mux.HandleFunc("POST /api/v1/auth/signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.HandleLogin)
	mux.Handle("PATCH /api/v1/auth/profile", RequireAuth(tokens, http.HandlerFunc(authHandler.HandleUpdateProfile)))
	mux.HandleFunc("GET /health", HandleHealth)
}
