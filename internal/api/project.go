package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateProject(c *gin.Context) {
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Color       string `json:"color"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	project, err := h.projects.Create(c.Request.Context(), currentUserID(c), body.Title, body.Description, body.Color)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	project, err := h.projects.GetDetails(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.projects.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
