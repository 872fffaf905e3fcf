package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/istvank-dev/Project-Tracking-Software/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// MemberProject is one row of the membership × project × owner join.
type MemberProject struct {
	models.Project
	Role       string
	OwnerName  string
	OwnerEmail string
}

// CreateWithOwner inserts the project together with the creator's
// "Owner" membership row. Both commit or neither does; a project
// without its owner membership would be unreachable by everyone.
func (r *ProjectRepository) CreateWithOwner(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		member := models.ProjectMember{
			ProjectID: project.ID,
			UserID:    project.OwnerID,
			Role:      models.RoleOwner,
		}
		return tx.Create(&member).Error
	})
}

// MemberRole looks up the caller's membership row. Absence is a normal
// outcome, reported via ok=false rather than an error.
func (r *ProjectRepository) MemberRole(ctx context.Context, projectID uint, userID string) (string, bool, error) {
	var member models.ProjectMember
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return member.Role, true, nil
}

func (r *ProjectRepository) memberJoin(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("project_members").
		Select("projects.*, project_members.role AS role, owners.username AS owner_name, owners.email AS owner_email").
		Joins("JOIN projects ON projects.id = project_members.project_id").
		Joins("JOIN users owners ON owners.id = projects.owner_id")
}

// FindForMember returns the project joined with the caller's role and
// the owner's identity, or gorm.ErrRecordNotFound when the caller has
// no membership row — whether or not the project exists.
func (r *ProjectRepository) FindForMember(ctx context.Context, projectID uint, userID string) (*MemberProject, error) {
	var row MemberProject
	err := r.memberJoin(ctx).
		Where("project_members.project_id = ? AND project_members.user_id = ?", projectID, userID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByMember returns every project the user belongs to, most
// recently created first.
func (r *ProjectRepository) ListByMember(ctx context.Context, userID string) ([]MemberProject, error) {
	var rows []MemberProject
	err := r.memberJoin(ctx).
		Where("project_members.user_id = ?", userID).
		Order("projects.created_at DESC").
		Find(&rows).Error
	return rows, err
}

// Delete removes the project and everything hanging off it in one
// transaction. Child rows are deleted explicitly so the cascade does
// not depend on foreign-key enforcement being enabled in the store.
func (r *ProjectRepository) Delete(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var board models.KanbanBoard
		err := tx.Where("project_id = ?", projectID).First(&board).Error
		switch err {
		case nil:
			if err := tx.Where("column_id IN (?)",
				tx.Model(&models.KanbanColumn{}).Select("id").Where("board_id = ?", board.ID),
			).Delete(&models.KanbanTicket{}).Error; err != nil {
				return err
			}
			if err := tx.Where("board_id = ?", board.ID).Delete(&models.KanbanColumn{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&board).Error; err != nil {
				return err
			}
		case gorm.ErrRecordNotFound:
			// no board was ever created
		default:
			return err
		}

		var module models.NoteModule
		err = tx.Where("project_id = ?", projectID).First(&module).Error
		switch err {
		case nil:
			if err := tx.Where("note_module_id = ?", module.ID).Delete(&models.NoteEntry{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&module).Error; err != nil {
				return err
			}
		case gorm.ErrRecordNotFound:
		default:
			return err
		}

		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, projectID).Error
	})
}
