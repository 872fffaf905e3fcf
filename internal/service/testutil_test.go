package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/istvank-dev/Project-Tracking-Software/internal/db"
	"github.com/istvank-dev/Project-Tracking-Software/internal/models"
	"github.com/istvank-dev/Project-Tracking-Software/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(gormDB))
	return gormDB
}

func createTestUser(t *testing.T, gormDB *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, gormDB.Create(user).Error)
	return user
}

func newProjectService(gormDB *gorm.DB) *ProjectService {
	return NewProjectService(
		repository.NewUserRepository(gormDB),
		repository.NewProjectRepository(gormDB),
	)
}

func newKanbanService(gormDB *gorm.DB) *KanbanService {
	return NewKanbanService(
		repository.NewProjectRepository(gormDB),
		repository.NewKanbanRepository(gormDB),
		repository.NewUserRepository(gormDB),
	)
}

func newNoteService(gormDB *gorm.DB) *NoteService {
	return NewNoteService(
		repository.NewProjectRepository(gormDB),
		repository.NewNoteRepository(gormDB),
	)
}

func createTestProject(t *testing.T, svc *ProjectService, ownerID, title string) *ProjectDetails {
	t.Helper()
	project, err := svc.Create(context.Background(), ownerID, title, "", "")
	require.NoError(t, err)
	return project
}
