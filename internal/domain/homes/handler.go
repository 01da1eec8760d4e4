package homes

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ruff-service/internal/apperr"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/homes", func(hr chi.Router) {
		hr.Post("/", createHomeHandler(svc))
		hr.Get("/", listHomesHandler(svc))
		hr.Get("/{homeID}", getHomeHandler(svc))
		hr.Patch("/{homeID}", updateHomeHandler(svc))
		hr.Delete("/{homeID}", deleteHomeHandler(svc))

		hr.Post("/{homeID}/users", addMemberHandler(svc))
		hr.Get("/{homeID}/users", listMembersHandler(svc))
	})
}

type createHomeRequest struct {
	Name    string `json:"name"`
	OwnerID string `json:"ownerId"`
}

func (req createHomeRequest) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, apperr.FieldError{Field: "name", Message: "must not be empty"})
	}
	if uuid.Validate(req.OwnerID) != nil {
		errs = append(errs, apperr.FieldError{Field: "ownerId", Message: "must be a UUID"})
	}
	return errs
}

type updateHomeRequest struct {
	Name    *string `json:"name"`
	OwnerID *string `json:"ownerId"`
}

func (req updateHomeRequest) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, apperr.FieldError{Field: "name", Message: "must not be empty"})
	}
	if req.OwnerID != nil && uuid.Validate(*req.OwnerID) != nil {
		errs = append(errs, apperr.FieldError{Field: "ownerId", Message: "must be a UUID"})
	}
	return errs
}

type addMemberRequest struct {
	UserID string `json:"userId"`
}

func (req addMemberRequest) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if uuid.Validate(req.UserID) != nil {
		errs = append(errs, apperr.FieldError{Field: "userId", Message: "must be a UUID"})
	}
	return errs
}

// @Summary Create home (owner becomes a member in the same transaction)
// @Tags homes
// @Success 201 {object} Home
// @Router /homes [post]
func createHomeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createHomeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := req.validate(); len(errs) > 0 {
			apperr.WriteValidation(w, errs)
			return
		}

		h, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			OwnerID: req.OwnerID,
		})
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, h)
	}
}

// @Summary Get home by id
// @Tags homes
// @Success 200 {object} Home
// @Router /homes/{homeID} [get]
func getHomeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := svc.Retrieve(r.Context(), chi.URLParam(r, "homeID"))
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, h)
	}
}

// @Summary List homes, optionally filtered by member user
// @Tags homes
// @Param userId query string false "member user id"
// @Success 200 {array} Home
// @Router /homes [get]
func listHomesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("userId")
		if userID != "" && uuid.Validate(userID) != nil {
			apperr.WriteValidation(w, []apperr.FieldError{{Field: "userId", Message: "must be a UUID"}})
			return
		}

		out, err := svc.RetrieveAll(r.Context(), userID)
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Update home
// @Tags homes
// @Success 200 {object} Home
// @Router /homes/{homeID} [patch]
func updateHomeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateHomeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := req.validate(); len(errs) > 0 {
			apperr.WriteValidation(w, errs)
			return
		}

		h, err := svc.Update(r.Context(), chi.URLParam(r, "homeID"), UpdateInput{
			Name:    req.Name,
			OwnerID: req.OwnerID,
		})
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, h)
	}
}

// @Summary Delete home
// @Tags homes
// @Success 200 {object} Home
// @Router /homes/{homeID} [delete]
func deleteHomeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := svc.Delete(r.Context(), chi.URLParam(r, "homeID"))
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, h)
	}
}

// @Summary Add a user to a home
// @Tags homes
// @Success 201 {object} map[string]any
// @Router /homes/{homeID}/users [post]
func addMemberHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := req.validate(); len(errs) > 0 {
			apperr.WriteValidation(w, errs)
			return
		}

		if err := svc.AddMember(r.Context(), chi.URLParam(r, "homeID"), req.UserID); err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, struct{}{})
	}
}

// @Summary List membership rows of a home
// @Tags homes
// @Success 200 {array} Membership
// @Router /homes/{homeID}/users [get]
func listMembersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.RetrieveMembers(r.Context(), chi.URLParam(r, "homeID"))
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
