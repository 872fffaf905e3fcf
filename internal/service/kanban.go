package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/istvank-dev/Project-Tracking-Software/internal/models"
	"github.com/istvank-dev/Project-Tracking-Software/internal/repository"
)

// sortGap is the spacing between appended sort keys, leaving room for
// many midpoint insertions before values get close together.
const sortGap = 1024

type TicketView struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	SortOrder       float64 `json:"sortOrder"`
	BackgroundColor string  `json:"backgroundColor"`
	TextColor       string  `json:"textColor"`
	ColumnID        uint    `json:"columnId"`
	OwnerUserID     string  `json:"ownerUserId"`
	AssigneeID      *string `json:"assigneeId,omitempty"`
}

type ColumnView struct {
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	SortOrder       float64      `json:"sortOrder"`
	BackgroundColor string       `json:"backgroundColor"`
	TextColor       string       `json:"textColor"`
	Tickets         []TicketView `json:"tickets"`
}

type BoardView struct {
	ID        uint         `json:"id"`
	ProjectID uint         `json:"projectId"`
	Columns   []ColumnView `json:"columns"`
}

type KanbanService struct {
	projects *repository.ProjectRepository
	boards   *repository.KanbanRepository
	users    *repository.UserRepository
}

func NewKanbanService(projects *repository.ProjectRepository, boards *repository.KanbanRepository, users *repository.UserRepository) *KanbanService {
	if projects == nil || boards == nil || users == nil {
		panic("kanban service requires project, kanban and user repositories")
	}
	return &KanbanService{projects: projects, boards: boards, users: users}
}

// GetBoard returns the project's board with columns and tickets in sort
// order, creating the board on first access.
func (s *KanbanService) GetBoard(ctx context.Context, callerID string, projectID uint) (*BoardView, error) {
	if err := requireMember(ctx, s.projects, projectID, callerID); err != nil {
		return nil, err
	}
	board, err := s.boards.EnsureBoard(ctx, projectID)
	if err != nil {
		return nil, err
	}
	loaded, err := s.boards.BoardContents(ctx, board.ID)
	if err != nil {
		return nil, err
	}
	return boardView(loaded), nil
}

// CreateColumn appends a column, or places it at the given sort key
// when one is supplied.
func (s *KanbanService) CreateColumn(ctx context.Context, callerID string, projectID uint, title string, sortOrder *float64) (*ColumnView, error) {
	if err := requireMember(ctx, s.projects, projectID, callerID); err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	board, err := s.boards.EnsureBoard(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var sort float64
	if sortOrder != nil {
		sort = *sortOrder
	} else {
		max, err := s.boards.MaxColumnSort(ctx, board.ID)
		if err != nil {
			return nil, err
		}
		sort = max + sortGap
	}

	column := models.KanbanColumn{
		Title:           title,
		SortOrder:       sort,
		BackgroundColor: models.DefaultColumnColor,
		TextColor:       models.DefaultColumnTextColor,
		BoardID:         board.ID,
	}
	if err := s.boards.CreateColumn(ctx, &column); err != nil {
		return nil, err
	}
	view := columnView(&column)
	return &view, nil
}

// CreateTicket adds a ticket at the end of a column, owned by the
// caller. The assignee, when given, must exist as a user; membership in
// the project is deliberately not required of the assignee, matching
// the observed behavior of the system this replaces.
func (s *KanbanService) CreateTicket(ctx context.Context, callerID string, projectID, columnID uint, title, description string, assigneeID *string) (*TicketView, error) {
	if err := requireMember(ctx, s.projects, projectID, callerID); err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	board, err := s.boards.EnsureBoard(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if _, err := s.boards.FindColumn(ctx, board.ID, columnID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColumnNotFound
		}
		return nil, err
	}
	if assigneeID != nil {
		if _, err := s.users.FindByID(ctx, *assigneeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAssigneeNotFound
			}
			return nil, err
		}
	}

	max, err := s.boards.MaxTicketSort(ctx, columnID)
	if err != nil {
		return nil, err
	}
	ticket := models.KanbanTicket{
		Title:           title,
		Description:     description,
		SortOrder:       max + sortGap,
		BackgroundColor: models.DefaultTicketColor,
		TextColor:       models.DefaultTicketTextColor,
		ColumnID:        columnID,
		OwnerUserID:     callerID,
		AssigneeID:      assigneeID,
	}
	if err := s.boards.CreateTicket(ctx, &ticket); err != nil {
		return nil, err
	}
	view := ticketView(&ticket)
	return &view, nil
}

// MoveTicket re-parents and/or re-orders a ticket by writing its new
// column and sort key. Callers pick a midpoint between neighbors; no
// rebalancing happens server-side.
func (s *KanbanService) MoveTicket(ctx context.Context, callerID string, projectID, ticketID, columnID uint, sortOrder float64) error {
	if err := requireMember(ctx, s.projects, projectID, callerID); err != nil {
		return err
	}
	board, err := s.boards.EnsureBoard(ctx, projectID)
	if err != nil {
		return err
	}
	if _, err := s.boards.FindTicket(ctx, board.ID, ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return err
	}
	if _, err := s.boards.FindColumn(ctx, board.ID, columnID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrColumnNotFound
		}
		return err
	}
	return s.boards.UpdateTicketPosition(ctx, ticketID, columnID, sortOrder)
}

// ReorderColumn writes a column's new sort key.
func (s *KanbanService) ReorderColumn(ctx context.Context, callerID string, projectID, columnID uint, sortOrder float64) error {
	if err := requireMember(ctx, s.projects, projectID, callerID); err != nil {
		return err
	}
	board, err := s.boards.EnsureBoard(ctx, projectID)
	if err != nil {
		return err
	}
	if _, err := s.boards.FindColumn(ctx, board.ID, columnID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrColumnNotFound
		}
		return err
	}
	return s.boards.UpdateColumnSort(ctx, columnID, sortOrder)
}

func boardView(board *models.KanbanBoard) *BoardView {
	view := BoardView{
		ID:        board.ID,
		ProjectID: board.ProjectID,
		Columns:   make([]ColumnView, 0, len(board.Columns)),
	}
	for i := range board.Columns {
		view.Columns = append(view.Columns, columnView(&board.Columns[i]))
	}
	return &view
}

func columnView(column *models.KanbanColumn) ColumnView {
	view := ColumnView{
		ID:              column.ID,
		Title:           column.Title,
		SortOrder:       column.SortOrder,
		BackgroundColor: column.BackgroundColor,
		TextColor:       column.TextColor,
		Tickets:         make([]TicketView, 0, len(column.Tickets)),
	}
	for i := range column.Tickets {
		view.Tickets = append(view.Tickets, ticketView(&column.Tickets[i]))
	}
	return view
}

func ticketView(ticket *models.KanbanTicket) TicketView {
	return TicketView{
		ID:              ticket.ID,
		Title:           ticket.Title,
		Description:     ticket.Description,
		SortOrder:       ticket.SortOrder,
		BackgroundColor: ticket.BackgroundColor,
		TextColor:       ticket.TextColor,
		ColumnID:        ticket.ColumnID,
		OwnerUserID:     ticket.OwnerUserID,
		AssigneeID:      ticket.AssigneeID,
	}
}
