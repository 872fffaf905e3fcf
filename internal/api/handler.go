package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/istvank-dev/Project-Tracking-Software/internal/service"
)

// Handler translates HTTP requests to service calls and service
// outcomes to status codes.
type Handler struct {
	auth         *service.AuthService
	projects     *service.ProjectService
	kanban       *service.KanbanService
	notes        *service.NoteService
	cookieSecure bool
}

func New(auth *service.AuthService, projects *service.ProjectService, kanban *service.KanbanService, notes *service.NoteService, cookieSecure bool) *Handler {
	return &Handler{
		auth:         auth,
		projects:     projects,
		kanban:       kanban,
		notes:        notes,
		cookieSecure: cookieSecure,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/auth/register", h.SignUp)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
	}

	authed := api.Group("")
	authed.Use(h.RequireAuth())
	{
		authed.GET("/user", h.CurrentUser)

		authed.POST("/projects", h.CreateProject)
		authed.GET("/projects", h.ListProjects)
		authed.GET("/projects/:id", h.GetProject)
		authed.DELETE("/projects/:id", h.DeleteProject)

		authed.GET("/projects/:id/board", h.GetBoard)
		authed.POST("/projects/:id/board/columns", h.CreateColumn)
		authed.PUT("/projects/:id/board/columns/:columnID", h.ReorderColumn)
		authed.POST("/projects/:id/board/columns/:columnID/tickets", h.CreateTicket)
		authed.PUT("/projects/:id/board/tickets/:ticketID", h.MoveTicket)

		authed.GET("/projects/:id/notes", h.GetNotes)
		authed.POST("/projects/:id/notes", h.CreateNote)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// serviceError maps service sentinels to status codes. Anything
// unrecognized is an infrastructure fault: logged server-side, reported
// as an opaque 500.
func (h *Handler) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrColumnNotFound),
		errors.Is(err, service.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrFieldsRequired),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrAssigneeNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pathID parses a numeric path parameter. A malformed id can never
// match a membership row, so it is reported as 404 like any other
// unknown id.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}
