package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/istvank-dev/Project-Tracking-Software/internal/models"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// EnsureModule returns the project's note module, creating it on first
// access.
func (r *NoteRepository) EnsureModule(ctx context.Context, projectID uint) (*models.NoteModule, error) {
	var module models.NoteModule
	err := r.db.WithContext(ctx).
		Where(models.NoteModule{ProjectID: projectID}).
		FirstOrCreate(&module).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *NoteRepository) ListEntries(ctx context.Context, moduleID uint) ([]models.NoteEntry, error) {
	var entries []models.NoteEntry
	err := r.db.WithContext(ctx).
		Where("note_module_id = ?", moduleID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *NoteRepository) CreateEntry(ctx context.Context, entry *models.NoteEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
