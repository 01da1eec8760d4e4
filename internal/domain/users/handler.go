package users

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/go-chi/chi/v5"

	"ruff-service/internal/apperr"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Post("/", createUserHandler(svc))
		ur.Get("/", listUsersHandler(svc))
		ur.Get("/{userID}", getUserHandler(svc))
		ur.Patch("/{userID}", updateUserHandler(svc))
		ur.Delete("/{userID}", deleteUserHandler(svc))
	})
}

type createUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (req createUserRequest) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		errs = append(errs, apperr.FieldError{Field: "email", Message: "must be a valid email"})
	}
	if strings.TrimSpace(req.FirstName) == "" {
		errs = append(errs, apperr.FieldError{Field: "firstName", Message: "must not be empty"})
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs = append(errs, apperr.FieldError{Field: "lastName", Message: "must not be empty"})
	}
	return errs
}

type updateUserRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func (req updateUserRequest) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if req.Email != nil {
		if _, err := mail.ParseAddress(strings.TrimSpace(*req.Email)); err != nil {
			errs = append(errs, apperr.FieldError{Field: "email", Message: "must be a valid email"})
		}
	}
	if req.FirstName != nil && strings.TrimSpace(*req.FirstName) == "" {
		errs = append(errs, apperr.FieldError{Field: "firstName", Message: "must not be empty"})
	}
	if req.LastName != nil && strings.TrimSpace(*req.LastName) == "" {
		errs = append(errs, apperr.FieldError{Field: "lastName", Message: "must not be empty"})
	}
	return errs
}

// createUserHandler registra un usuario nuevo.
// @Summary Create user
// @Tags users
// @Success 201 {object} User
// @Router /users [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := req.validate(); len(errs) > 0 {
			apperr.WriteValidation(w, errs)
			return
		}

		u, err := svc.Create(r.Context(), CreateInput{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, u)
	}
}

// @Summary Get user by id
// @Tags users
// @Success 200 {object} User
// @Router /users/{userID} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.Retrieve(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

// @Summary List users
// @Tags users
// @Success 200 {array} User
// @Router /users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.RetrieveAll(r.Context())
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Update user
// @Tags users
// @Success 200 {object} User
// @Router /users/{userID} [patch]
func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := req.validate(); len(errs) > 0 {
			apperr.WriteValidation(w, errs)
			return
		}

		u, err := svc.Update(r.Context(), chi.URLParam(r, "userID"), UpdateInput{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

// @Summary Delete user
// @Tags users
// @Success 200 {object} User
// @Router /users/{userID} [delete]
func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.Delete(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
