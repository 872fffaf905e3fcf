package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/istvank-dev/Project-Tracking-Software/internal/models"
)

type KanbanRepository struct {
	db *gorm.DB
}

func NewKanbanRepository(db *gorm.DB) *KanbanRepository {
	return &KanbanRepository{db: db}
}

// EnsureBoard returns the project's board, creating an empty one on
// first access.
func (r *KanbanRepository) EnsureBoard(ctx context.Context, projectID uint) (*models.KanbanBoard, error) {
	var board models.KanbanBoard
	err := r.db.WithContext(ctx).
		Where(models.KanbanBoard{ProjectID: projectID}).
		FirstOrCreate(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// BoardContents loads the board with its columns and tickets, both
// ordered by sort key.
func (r *KanbanRepository) BoardContents(ctx context.Context, boardID uint) (*models.KanbanBoard, error) {
	var board models.KanbanBoard
	err := r.db.WithContext(ctx).
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Columns.Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&board, boardID).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *KanbanRepository) CreateColumn(ctx context.Context, column *models.KanbanColumn) error {
	return r.db.WithContext(ctx).Create(column).Error
}

// FindColumn scopes the lookup to the given board so a column id from
// another project cannot be addressed.
func (r *KanbanRepository) FindColumn(ctx context.Context, boardID, columnID uint) (*models.KanbanColumn, error) {
	var column models.KanbanColumn
	err := r.db.WithContext(ctx).
		Where("id = ? AND board_id = ?", columnID, boardID).
		First(&column).Error
	if err != nil {
		return nil, err
	}
	return &column, nil
}

func (r *KanbanRepository) MaxColumnSort(ctx context.Context, boardID uint) (float64, error) {
	var max float64
	err := r.db.WithContext(ctx).
		Model(&models.KanbanColumn{}).
		Where("board_id = ?", boardID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	return max, err
}

func (r *KanbanRepository) CreateTicket(ctx context.Context, ticket *models.KanbanTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

// FindTicket scopes the lookup to the board's columns.
func (r *KanbanRepository) FindTicket(ctx context.Context, boardID, ticketID uint) (*models.KanbanTicket, error) {
	var ticket models.KanbanTicket
	err := r.db.WithContext(ctx).
		Where("kanban_tickets.id = ?", ticketID).
		Where("column_id IN (?)",
			r.db.Model(&models.KanbanColumn{}).Select("id").Where("board_id = ?", boardID)).
		First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *KanbanRepository) MaxTicketSort(ctx context.Context, columnID uint) (float64, error) {
	var max float64
	err := r.db.WithContext(ctx).
		Model(&models.KanbanTicket{}).
		Where("column_id = ?", columnID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	return max, err
}

// UpdateTicketPosition writes the ticket's new column and sort key.
// Re-ordering is just this write; siblings are never touched.
func (r *KanbanRepository) UpdateTicketPosition(ctx context.Context, ticketID, columnID uint, sortOrder float64) error {
	return r.db.WithContext(ctx).
		Model(&models.KanbanTicket{}).
		Where("id = ?", ticketID).
		Updates(map[string]interface{}{"column_id": columnID, "sort_order": sortOrder}).Error
}

func (r *KanbanRepository) UpdateColumnSort(ctx context.Context, columnID uint, sortOrder float64) error {
	return r.db.WithContext(ctx).
		Model(&models.KanbanColumn{}).
		Where("id = ?", columnID).
		Update("sort_order", sortOrder).Error
}
