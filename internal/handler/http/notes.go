package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const maxNoteBodySize = 1 << 20

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, mutation, err := decodeMutation(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("invalid note payload")
		writeError(w, err)
		return
	}

	if err = h.services.NoteService.CreateNote(r.Context(), identity, mutation); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, mutation, err := decodeMutation(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Msg("invalid note payload")
		writeError(w, err)
		return
	}

	if err = h.services.NoteService.DeleteNote(r.Context(), identity, mutation); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Msg("error deleting note")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func decodeMutation(w http.ResponseWriter, r *http.Request) (models.Identity, models.NoteMutation, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, models.NoteMutation{}, ErrNoSession
	}

	var mutation models.NoteMutation
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxNoteBodySize)).Decode(&mutation); err != nil {
		return models.Identity{}, models.NoteMutation{}, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	return identity, mutation, nil
}
