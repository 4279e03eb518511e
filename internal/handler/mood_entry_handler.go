package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sjjames020/TranquiliTea/internal/models"
	"github.com/sjjames020/TranquiliTea/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodEntryService es la parte del servicio de entradas que usan las rutas.
type MoodEntryService interface {
	List(ctx context.Context, userID primitive.ObjectID) ([]models.MoodEntryDoc, error)
	Create(ctx context.Context, userID primitive.ObjectID, moodRating float64, notes string) (*models.MoodEntryDoc, error)
	Update(ctx context.Context, userID primitive.ObjectID, entryID string, moodRating float64, notes string) (*models.MoodEntryDoc, error)
	Delete(ctx context.Context, userID primitive.ObjectID, entryID string) error
}

type MoodEntryHandler struct {
	svc      MoodEntryService
	validate *validator.Validate
}

func NewMoodEntryHandler(s MoodEntryService) *MoodEntryHandler {
	return &MoodEntryHandler{svc: s, validate: validator.New()}
}

type moodEntryRequest struct {
	// puntero para distinguir "sin rating" de un rating 0 explícito
	MoodRating *float64 `json:"moodRating" validate:"required"`
	Notes      string   `json:"notes"`
}

// @Summary Listar entradas de ánimo
// @Description Entradas del usuario autenticado en orden de creación
// @Tags mood-entries
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.MoodEntryDoc
// @Failure 401 {object} map[string]string
// @Router /mood-entries [get]
func (h *MoodEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	list, err := h.svc.List(r.Context(), user.ID)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if list == nil {
		list = []models.MoodEntryDoc{}
	}
	respondJSON(w, http.StatusOK, list)
}

// @Summary Crear entrada de ánimo
// @Tags mood-entries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body moodEntryRequest true "entrada"
// @Success 201 {object} models.MoodEntryDoc
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /mood-entries [post]
func (h *MoodEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req moodEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "moodRating is required")
		return
	}

	e, err := h.svc.Create(r.Context(), user.ID, *req.MoodRating, req.Notes)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, e)
}

// @Summary Actualizar entrada de ánimo
// @Description Reemplaza rating y notas; la fecha y el dueño no cambian
// @Tags mood-entries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "id de la entrada"
// @Param body body moodEntryRequest true "entrada"
// @Success 200 {object} models.MoodEntryDoc
// @Failure 404 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /mood-entries/{id} [put]
func (h *MoodEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req moodEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "moodRating is required")
		return
	}

	e, err := h.svc.Update(r.Context(), user.ID, id, *req.MoodRating, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			respondMessage(w, http.StatusNotFound, "Mood entry not found")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, e)
}

// @Summary Borrar entrada de ánimo
// @Tags mood-entries
// @Security BearerAuth
// @Produce json
// @Param id path string true "id de la entrada"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /mood-entries/{id} [delete]
func (h *MoodEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			respondMessage(w, http.StatusNotFound, "Mood entry not found")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondMessage(w, http.StatusOK, "Mood entry deleted successfully")
}
