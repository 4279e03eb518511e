package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sjjames020/TranquiliTea/internal/models"
	"github.com/sjjames020/TranquiliTea/internal/service"

	"github.com/go-playground/validator/v10"
)

// AuthService es la parte del servicio de auth que usan estas rutas.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.UserDoc, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthHandler struct {
	svc      AuthService
	validate *validator.Validate
}

func NewAuthHandler(s AuthService) *AuthHandler {
	return &AuthHandler{svc: s, validate: validator.New()}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// @Summary Register
// @Description Crea un usuario nuevo
// @Tags auth
// @Accept json
// @Produce json
// @Param body body credentialsRequest true "credenciales"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	_, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondMessage(w, http.StatusCreated, "User registered successfully")
}

// @Summary Login
// @Description Valida credenciales y devuelve un bearer token (1h)
// @Tags auth
// @Accept json
// @Produce json
// @Param body body credentialsRequest true "credenciales"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		// misma respuesta que credenciales malas, no revelamos qué campo faltó
		respondMessage(w, http.StatusBadRequest, "Invalid email or password")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondMessage(w, http.StatusBadRequest, "Invalid email or password")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Logged in successfully",
		"token":   token,
	})
}
