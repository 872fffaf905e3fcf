package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/istvank-dev/Project-Tracking-Software/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.KanbanBoard{},
		&models.KanbanColumn{},
		&models.KanbanTicket{},
		&models.NoteModule{},
		&models.NoteEntry{},
	)
}
