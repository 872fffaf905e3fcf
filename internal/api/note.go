package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetNotes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	module, err := h.notes.GetModule(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

func (h *Handler) CreateNote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	entry, err := h.notes.CreateEntry(c.Request.Context(), currentUserID(c), id, body.Title, body.Description)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
