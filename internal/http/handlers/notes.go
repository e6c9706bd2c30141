package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/lineboard/lineboard-backend/internal/http/response"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
	"github.com/lineboard/lineboard-backend/internal/services"
)

type NoteHandler struct {
	log   *logger.Logger
	notes services.NoteService
}

func NewNoteHandler(log *logger.Logger, noteService services.NoteService) *NoteHandler {
	return &NoteHandler{
		log:   log.With("handler", "NoteHandler"),
		notes: noteService,
	}
}

func (h *NoteHandler) GetNotes(c *gin.Context) {
	notes, err := h.notes.ListNotes(c.Request.Context(), c.Param("month"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, notes)
}

func (h *NoteHandler) PostNote(c *gin.Context) {
	var body struct {
		Text     string         `json:"text"`
		Metadata datatypes.JSON `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	note, err := h.notes.AddNote(c.Request.Context(), c.Param("month"), body.Text, body.Metadata)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, note)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_note_id", err)
		return
	}
	if err := h.notes.DeleteNote(c.Request.Context(), c.Param("month"), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}
