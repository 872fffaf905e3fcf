package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/istvank-dev/Project-Tracking-Software/internal/models"
	"github.com/istvank-dev/Project-Tracking-Software/internal/repository"
)

// ProjectDetails is the project as seen by one member: the row itself
// plus that member's role and the owner's display name.
type ProjectDetails struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	OwnerID     string    `json:"ownerId"`
	OwnerName   string    `json:"ownerName"`
	UserRole    string    `json:"userRole"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProjectService struct {
	users    *repository.UserRepository
	projects *repository.ProjectRepository
}

func NewProjectService(users *repository.UserRepository, projects *repository.ProjectRepository) *ProjectService {
	if users == nil {
		panic("user repository is required")
	}
	if projects == nil {
		panic("project repository is required")
	}
	return &ProjectService{users: users, projects: projects}
}

// Create inserts the project and the creator's Owner membership as one
// transaction.
func (s *ProjectService) Create(ctx context.Context, callerID, title, description, color string) (*ProjectDetails, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if color == "" {
		color = models.DefaultProjectColor
	}
	project := models.Project{
		Title:           title,
		Description:     description,
		BackgroundColor: color,
		OwnerID:         caller.ID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.projects.CreateWithOwner(ctx, &project); err != nil {
		return nil, err
	}

	return &ProjectDetails{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Color:       project.BackgroundColor,
		OwnerID:     project.OwnerID,
		OwnerName:   caller.DisplayName(),
		UserRole:    models.RoleOwner,
		CreatedAt:   project.CreatedAt,
	}, nil
}

// GetDetails returns the project as the caller sees it. A project the
// caller is not a member of is reported exactly like one that does not
// exist.
func (s *ProjectService) GetDetails(ctx context.Context, callerID string, projectID uint) (*ProjectDetails, error) {
	row, err := s.projects.FindForMember(ctx, projectID, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return memberProjectDetails(row), nil
}

// List returns every project the caller belongs to, newest first.
func (s *ProjectService) List(ctx context.Context, callerID string) ([]ProjectDetails, error) {
	rows, err := s.projects.ListByMember(ctx, callerID)
	if err != nil {
		return nil, err
	}
	details := make([]ProjectDetails, 0, len(rows))
	for i := range rows {
		details = append(details, *memberProjectDetails(&rows[i]))
	}
	return details, nil
}

// Delete removes the project and all of its children. Deletion is the
// one operation that interprets the role value: only the Owner may
// destroy a project.
func (s *ProjectService) Delete(ctx context.Context, callerID string, projectID uint) error {
	role, ok, err := s.projects.MemberRole(ctx, projectID, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProjectNotFound
	}
	if role != models.RoleOwner {
		return ErrNotOwner
	}
	return s.projects.Delete(ctx, projectID)
}

func memberProjectDetails(row *repository.MemberProject) *ProjectDetails {
	name := row.OwnerName
	if name == "" {
		name = row.OwnerEmail
	}
	return &ProjectDetails{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Color:       row.BackgroundColor,
		OwnerID:     row.OwnerID,
		OwnerName:   name,
		UserRole:    row.Role,
		CreatedAt:   row.CreatedAt,
	}
}
