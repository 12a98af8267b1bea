package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	appmw "notes-api/middleware"
	"notes-api/models"
	"notes-api/service/notes"
)

type NoteHandler struct {
	service notes.Service
	logger  zerolog.Logger
}

func NewNoteHandler(service notes.Service, logger zerolog.Logger) *NoteHandler {
	return &NoteHandler{service: service, logger: logger}
}

type storeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (req storeRequest) validate() map[string][]string {
	errs := map[string][]string{}
	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = append(errs["title"], "The title field is required.")
	}
	if strings.TrimSpace(req.Content) == "" {
		errs["content"] = append(errs["content"], "The content field is required.")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type updateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (req updateRequest) validate() map[string][]string {
	errs := map[string][]string{}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs["title"] = append(errs["title"], "The title field must not be empty.")
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		errs["content"] = append(errs["content"], "The content field must not be empty.")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (h *NoteHandler) Index(w http.ResponseWriter, r *http.Request) {
	userID := appmw.UserID(r)

	listed, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Int("user_id", userID).Msg("list notes failed")
		internalError(w)
		return
	}

	if listed == nil {
		listed = []models.Note{}
	}
	respondJSON(w, http.StatusOK, listed)
}

func (h *NoteHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID := appmw.UserID(r)

	noteID, err := noteIDParam(r)
	if err != nil {
		notFound(w)
		return
	}

	note, err := h.service.Get(r.Context(), noteID, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			notFound(w)
			return
		}
		h.logger.Error().Err(err).Int("user_id", userID).Msg("get note failed")
		internalError(w)
		return
	}

	respondJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Store(w http.ResponseWriter, r *http.Request) {
	userID := appmw.UserID(r)

	var req storeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := req.validate(); errs != nil {
		validationError(w, errs)
		return
	}

	note, err := h.service.Create(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		h.logger.Error().Err(err).Int("user_id", userID).Msg("create note failed")
		internalError(w)
		return
	}

	respondJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := appmw.UserID(r)

	noteID, err := noteIDParam(r)
	if err != nil {
		notFound(w)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := req.validate(); errs != nil {
		validationError(w, errs)
		return
	}

	note, err := h.service.Update(r.Context(), noteID, userID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			notFound(w)
			return
		}
		h.logger.Error().Err(err).Int("user_id", userID).Msg("update note failed")
		internalError(w)
		return
	}

	respondJSON(w, http.StatusOK, note)
}

// Destroy is idempotent: an id that never existed, was already
// deleted, or cannot parse still reports success.
func (h *NoteHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	userID := appmw.UserID(r)

	noteID, err := noteIDParam(r)
	if err == nil {
		if err := h.service.Delete(r.Context(), noteID, userID); err != nil {
			h.logger.Error().Err(err).Int("user_id", userID).Msg("delete note failed")
			internalError(w)
			return
		}
	}

	respondMessage(w, http.StatusOK, "Note deleted")
}

func noteIDParam(r *http.Request) (int, error) {
	noteID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, err
	}
	if noteID <= 0 {
		return 0, errors.New("invalid note id")
	}
	return noteID, nil
}
