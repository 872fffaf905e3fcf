package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/istvank-dev/Project-Tracking-Software/internal/db"
	"github.com/istvank-dev/Project-Tracking-Software/internal/models"
	"github.com/istvank-dev/Project-Tracking-Software/internal/repository"
	"github.com/istvank-dev/Project-Tracking-Software/internal/service"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gormDB))

	users := repository.NewUserRepository(gormDB)
	projects := repository.NewProjectRepository(gormDB)
	boards := repository.NewKanbanRepository(gormDB)
	notes := repository.NewNoteRepository(gormDB)

	h := New(
		service.NewAuthService(users, nil, "test-secret"),
		service.NewProjectService(users, projects),
		service.NewKanbanService(projects, boards, users),
		service.NewNoteService(projects, notes),
		false,
	)

	router := gin.New()
	h.Register(router)
	return router, gormDB
}

func doJSON(t *testing.T, router *gin.Engine, method, path, cookie, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account and returns the session cookie.
func registerAndLogin(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":"%s@example.com","password":"hunter22"}`, username, username)
	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusOK, w.Code)

	body = fmt.Sprintf(`{"email":"%s@example.com","password":"hunter22"}`, username)
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", body)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == "session" && c.Value != "" {
			return c.Name + "=" + c.Value
		}
	}
	t.Fatal("login response carried no session cookie")
	return ""
}

func TestAuthFlow(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/user", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	cookie := registerAndLogin(t, router, "alice")

	w = doJSON(t, router, http.MethodGet, "/api/user", cookie, "")
	require.Equal(t, http.StatusOK, w.Code)

	var user struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "alice@example.com", user.Email)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", `{"email":"alice@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProject_RequiresSession(t *testing.T) {
	router, gormDB := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/projects", "", `{"title":"Alpha"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var count int64
	require.NoError(t, gormDB.Model(&models.Project{}).Count(&count).Error)
	require.Zero(t, count, "an unauthenticated request must not create a project")
}

func TestProjectLifecycle(t *testing.T) {
	router, _ := setupRouter(t)
	alice := registerAndLogin(t, router, "alice")
	bob := registerAndLogin(t, router, "bob")

	w := doJSON(t, router, http.MethodPost, "/api/projects", alice, `{"title":"Alpha","color":"#3498db"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var project service.ProjectDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.EqualValues(t, 1, project.ID)
	require.Equal(t, "Alpha", project.Title)
	require.Equal(t, "#3498db", project.Color)
	require.Equal(t, "alice", project.OwnerName)
	require.Equal(t, models.RoleOwner, project.UserRole)

	// Empty title is a validation failure, not a server failure.
	w = doJSON(t, router, http.MethodPost, "/api/projects", alice, `{"title":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// bob was never added: the project looks nonexistent to him.
	w = doJSON(t, router, http.MethodGet, "/api/projects/1", bob, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects/1", alice, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects", alice, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []service.ProjectDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "Alpha", list[0].Title)

	w = doJSON(t, router, http.MethodGet, "/api/projects", bob, "")
	require.Equal(t, http.StatusOK, w.Code)
	list = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Empty(t, list)

	// Deletion: invisible to non-members, owner-only for members.
	w = doJSON(t, router, http.MethodDelete, "/api/projects/1", bob, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/projects/1", alice, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects/1", alice, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBoardAndNotesEndpoints(t *testing.T) {
	router, _ := setupRouter(t)
	alice := registerAndLogin(t, router, "alice")
	bob := registerAndLogin(t, router, "bob")

	w := doJSON(t, router, http.MethodPost, "/api/projects", alice, `{"title":"Alpha"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects/1/board", bob, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects/1/board", alice, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/projects/1/board/columns", alice, `{"title":"Todo"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var column service.ColumnView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &column))

	path := fmt.Sprintf("/api/projects/1/board/columns/%d/tickets", column.ID)
	w = doJSON(t, router, http.MethodPost, path, alice, `{"title":"Task one","description":"details"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects/1/board", alice, "")
	require.Equal(t, http.StatusOK, w.Code)
	var board service.BoardView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.Len(t, board.Columns, 1)
	require.Len(t, board.Columns[0].Tickets, 1)

	w = doJSON(t, router, http.MethodPost, "/api/projects/1/notes", alice, `{"title":"Standup","description":"notes"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects/1/notes", alice, "")
	require.Equal(t, http.StatusOK, w.Code)
	var module service.NoteModuleView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &module))
	require.Len(t, module.Notes, 1)

	w = doJSON(t, router, http.MethodPost, "/api/projects/1/notes", bob, `{"title":"Sneaky"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}
