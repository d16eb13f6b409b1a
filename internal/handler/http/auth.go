package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/MKhiriev/go-bookshelf/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: errInvalidJSON.Error()}, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.SignUp(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("sign up failed")
		respondError(w, err)
		return
	}

	log.Info().Str("email", request.Email).Msg("user successfully signed up")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: errInvalidJSON.Error()}, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("login failed")
		respondError(w, err)
		return
	}

	log.Info().Str("email", request.Email).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
