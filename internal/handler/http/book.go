package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	keyword := r.URL.Query().Get("keyword")

	// absent or malformed page falls back to the first one
	page := 1
	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		if parsed, err := strconv.Atoi(pageParam); err == nil {
			page = parsed
		}
	}

	books, total, err := h.services.BookService.FindAll(ctx, keyword, page)
	if err != nil {
		log.Err(err).Str("keyword", keyword).Int("page", page).Msg("book listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.BookListResponse{Items: books, Total: total}, http.StatusOK)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	bookID := chi.URLParam(r, "bookID")

	book, err := h.services.BookService.FindByID(ctx, bookID)
	if err != nil {
		log.Err(err).Str("bookID", bookID).Msg("book lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context of an authenticated request")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	var request models.BookCreate
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: errInvalidJSON.Error()}, http.StatusBadRequest)
		return
	}

	book, err := h.services.BookService.Create(ctx, request, ownerID)
	if err != nil {
		log.Err(err).Str("title", request.Title).Msg("book creation failed")
		respondError(w, err)
		return
	}

	log.Info().Str("bookID", book.BookID.String()).Msg("book created")

	utils.WriteJSON(w, book, http.StatusCreated)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	bookID := chi.URLParam(r, "bookID")

	var update models.BookUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: errInvalidJSON.Error()}, http.StatusBadRequest)
		return
	}

	book, err := h.services.BookService.UpdateByID(ctx, bookID, update)
	if err != nil {
		log.Err(err).Str("bookID", bookID).Msg("book update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	bookID := chi.URLParam(r, "bookID")

	book, err := h.services.BookService.DeleteByID(ctx, bookID)
	if err != nil {
		log.Err(err).Str("bookID", bookID).Msg("book deletion failed")
		respondError(w, err)
		return
	}

	log.Info().Str("bookID", bookID).Msg("book deleted")

	utils.WriteJSON(w, book, http.StatusOK)
}
