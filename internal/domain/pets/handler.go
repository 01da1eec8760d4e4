package pets

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ruff-service/internal/apperr"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		// Lookups estáticos antes que {petID} para que chi no los capture.
		pr.Get("/types", listTypesHandler(svc))
		pr.Get("/genders", listGendersHandler(svc))
		pr.Get("/breeds", listBreedsHandler(svc))
		pr.Get("/logs/types", listLogTypesHandler(svc))
		pr.Get("/logs", listUserLogsHandler(svc))

		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))

		pr.Post("/{petID}/logs", createPetLogHandler(svc))
		pr.Get("/{petID}/logs", listPetLogsHandler(svc))
	})
}

type createPetRequest struct {
	Name   string    `json:"name"`
	Type   string    `json:"type"`
	Gender string    `json:"gender"`
	DOB    time.Time `json:"dob"`
	Breed  string    `json:"breed"`
	HomeID string    `json:"homeId"`
}

func (req createPetRequest) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, apperr.FieldError{Field: "name", Message: "must not be empty"})
	}
	if !IsValidType(req.Type) {
		errs = append(errs, apperr.FieldError{Field: "type", Message: "must be one of " + strings.Join(Types(), ", ")})
	}
	if !IsValidGender(req.Gender) {
		errs = append(errs, apperr.FieldError{Field: "gender", Message: "must be one of " + strings.Join(Genders(), ", ")})
	}
	if req.DOB.IsZero() {
		errs = append(errs, apperr.FieldError{Field: "dob", Message: "must be a valid date"})
	}
	if !IsValidBreed(req.Type, req.Breed) {
		errs = append(errs, apperr.FieldError{Field: "breed", Message: "must be a valid breed for the pet type"})
	}
	if uuid.Validate(req.HomeID) != nil {
		errs = append(errs, apperr.FieldError{Field: "homeId", Message: "must be a UUID"})
	}
	return errs
}

type updatePetRequest struct {
	Name   *string    `json:"name"`
	Type   *string    `json:"type"`
	Gender *string    `json:"gender"`
	DOB    *time.Time `json:"dob"`
	Breed  *string    `json:"breed"`
	HomeID *string    `json:"homeId"`
}

func (req updatePetRequest) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, apperr.FieldError{Field: "name", Message: "must not be empty"})
	}
	if req.Type != nil && !IsValidType(*req.Type) {
		errs = append(errs, apperr.FieldError{Field: "type", Message: "must be one of " + strings.Join(Types(), ", ")})
	}
	if req.Gender != nil && !IsValidGender(*req.Gender) {
		errs = append(errs, apperr.FieldError{Field: "gender", Message: "must be one of " + strings.Join(Genders(), ", ")})
	}
	if req.Breed != nil {
		// Sin type en el PATCH, la raza se valida contra el set default (perro).
		petType := ""
		if req.Type != nil {
			petType = *req.Type
		}
		if !IsValidBreed(petType, *req.Breed) {
			errs = append(errs, apperr.FieldError{Field: "breed", Message: "must be a valid breed for the pet type"})
		}
	}
	if req.HomeID != nil && uuid.Validate(*req.HomeID) != nil {
		errs = append(errs, apperr.FieldError{Field: "homeId", Message: "must be a UUID"})
	}
	return errs
}

type createPetLogRequest struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func (req createPetLogRequest) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if !IsValidLogType(req.Type) {
		errs = append(errs, apperr.FieldError{Field: "type", Message: "must be one of " + strings.Join(LogTypes(), ", ")})
	}
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, apperr.FieldError{Field: "title", Message: "must not be empty"})
	}
	if req.OccurredAt.IsZero() {
		errs = append(errs, apperr.FieldError{Field: "occurredAt", Message: "must be a valid timestamp"})
	}
	return errs
}

// @Summary Create pet
// @Tags pets
// @Success 201 {object} Pet
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := req.validate(); len(errs) > 0 {
			apperr.WriteValidation(w, errs)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:   req.Name,
			Type:   req.Type,
			Gender: req.Gender,
			DOB:    req.DOB,
			Breed:  req.Breed,
			HomeID: req.HomeID,
		})
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

// @Summary Get pet by id
// @Tags pets
// @Success 200 {object} Pet
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Retrieve(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// @Summary List pets, optionally filtered by member user
// @Tags pets
// @Param userId query string false "member user id"
// @Success 200 {array} Pet
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
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

// @Summary Update pet
// @Tags pets
// @Success 200 {object} Pet
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := req.validate(); len(errs) > 0 {
			apperr.WriteValidation(w, errs)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:   req.Name,
			Type:   req.Type,
			Gender: req.Gender,
			DOB:    req.DOB,
			Breed:  req.Breed,
			HomeID: req.HomeID,
		})
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// @Summary Delete pet
// @Tags pets
// @Success 200 {object} Pet
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Delete(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// @Summary List pet types
// @Tags pets
// @Success 200 {array} string
// @Router /pets/types [get]
func listTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.RetrieveTypes())
	}
}

// @Summary List pet genders
// @Tags pets
// @Success 200 {array} string
// @Router /pets/genders [get]
func listGendersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.RetrieveGenders())
	}
}

// @Summary List breeds for a pet type (defaults to dog)
// @Tags pets
// @Param type query string false "pet type"
// @Success 200 {array} string
// @Router /pets/breeds [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.RetrieveBreeds(r.URL.Query().Get("type")))
	}
}

// @Summary List pet log types
// @Tags pets
// @Success 200 {array} string
// @Router /pets/logs/types [get]
func listLogTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.RetrieveLogTypes())
	}
}

// @Summary Create a log entry for a pet
// @Tags pets
// @Success 201 {object} PetLog
// @Router /pets/{petID}/logs [post]
func createPetLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := req.validate(); len(errs) > 0 {
			apperr.WriteValidation(w, errs)
			return
		}

		l, err := svc.CreateLog(r.Context(), chi.URLParam(r, "petID"), CreateLogInput{
			Type:        req.Type,
			Title:       req.Title,
			Description: req.Description,
			OccurredAt:  req.OccurredAt,
		})
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, l)
	}
}

// @Summary List logs of a pet, newest first
// @Tags pets
// @Success 200 {array} PetLog
// @Router /pets/{petID}/logs [get]
func listPetLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.RetrieveLogs(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary List logs for every pet the user can see
// @Tags pets
// @Param userId query string false "member user id"
// @Success 200 {array} PetLog
// @Router /pets/logs [get]
func listUserLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("userId")
		if userID != "" && uuid.Validate(userID) != nil {
			apperr.WriteValidation(w, []apperr.FieldError{{Field: "userId", Message: "must be a UUID"}})
			return
		}

		out, err := svc.RetrieveLogsForUser(r.Context(), userID)
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
