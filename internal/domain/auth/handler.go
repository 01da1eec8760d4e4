package auth

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/go-chi/chi/v5"

	"ruff-service/internal/apperr"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/auth/login", loginHandler(svc))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req loginRequest) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		errs = append(errs, apperr.FieldError{Field: "email", Message: "must be a valid email"})
	}
	if req.Password == "" {
		errs = append(errs, apperr.FieldError{Field: "password", Message: "must not be empty"})
	}
	return errs
}

// @Summary Login with email, returns an access token
// @Tags auth
// @Success 200 {object} LoginResult
// @Router /auth/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := req.validate(); len(errs) > 0 {
			apperr.WriteValidation(w, errs)
			return
		}

		out, err := svc.Login(r.Context(), strings.TrimSpace(req.Email))
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
