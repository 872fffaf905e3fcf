package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetBoard(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	board, err := h.kanban.GetBoard(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *Handler) CreateColumn(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Title     string   `json:"title"`
		SortOrder *float64 `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	column, err := h.kanban.CreateColumn(c.Request.Context(), currentUserID(c), id, body.Title, body.SortOrder)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, column)
}

func (h *Handler) ReorderColumn(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	columnID, ok := pathID(c, "columnID")
	if !ok {
		return
	}
	var body struct {
		SortOrder float64 `json:"sortOrder" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sortOrder is required"})
		return
	}
	if err := h.kanban.ReorderColumn(c.Request.Context(), currentUserID(c), id, columnID, body.SortOrder); err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (h *Handler) CreateTicket(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	columnID, ok := pathID(c, "columnID")
	if !ok {
		return
	}
	var body struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		AssigneeID  *string `json:"assigneeId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ticket, err := h.kanban.CreateTicket(c.Request.Context(), currentUserID(c), id, columnID, body.Title, body.Description, body.AssigneeID)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

func (h *Handler) MoveTicket(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ticketID, ok := pathID(c, "ticketID")
	if !ok {
		return
	}
	var body struct {
		ColumnID  uint    `json:"columnId" binding:"required"`
		SortOrder float64 `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "columnId is required"})
		return
	}
	if err := h.kanban.MoveTicket(c.Request.Context(), currentUserID(c), id, ticketID, body.ColumnID, body.SortOrder); err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
