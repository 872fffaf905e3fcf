package db

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/istvank-dev/Project-Tracking-Software/internal/models"
)

func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "20250901_create_users_table",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("users")
			},
		},
		{
			ID: "20250901_create_projects_and_members",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Project{}, &models.ProjectMember{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("project_members", "projects")
			},
		},
		{
			ID: "20250908_create_kanban_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.KanbanBoard{}, &models.KanbanColumn{}, &models.KanbanTicket{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("kanban_tickets", "kanban_columns", "kanban_boards")
			},
		},
		{
			ID: "20250908_create_note_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.NoteModule{}, &models.NoteEntry{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("note_entries", "note_modules")
			},
		},
	}
}
