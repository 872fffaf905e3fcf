package service

import (
	"context"
	"strings"
	"time"

	"github.com/istvank-dev/Project-Tracking-Software/internal/models"
	"github.com/istvank-dev/Project-Tracking-Software/internal/repository"
)

type NoteEntryView struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	BackgroundColor string    `json:"backgroundColor"`
	TextColor       string    `json:"textColor"`
	OwnerUserID     string    `json:"ownerUserId"`
	CreatedAt       time.Time `json:"createdAt"`
}

type NoteModuleView struct {
	ID        uint            `json:"id"`
	ProjectID uint            `json:"projectId"`
	Notes     []NoteEntryView `json:"notes"`
}

type NoteService struct {
	projects *repository.ProjectRepository
	notes    *repository.NoteRepository
}

func NewNoteService(projects *repository.ProjectRepository, notes *repository.NoteRepository) *NoteService {
	if projects == nil || notes == nil {
		panic("note service requires project and note repositories")
	}
	return &NoteService{projects: projects, notes: notes}
}

// GetModule returns the project's notes, newest first, creating the
// module on first access.
func (s *NoteService) GetModule(ctx context.Context, callerID string, projectID uint) (*NoteModuleView, error) {
	if err := requireMember(ctx, s.projects, projectID, callerID); err != nil {
		return nil, err
	}
	module, err := s.notes.EnsureModule(ctx, projectID)
	if err != nil {
		return nil, err
	}
	entries, err := s.notes.ListEntries(ctx, module.ID)
	if err != nil {
		return nil, err
	}
	view := NoteModuleView{
		ID:        module.ID,
		ProjectID: module.ProjectID,
		Notes:     make([]NoteEntryView, 0, len(entries)),
	}
	for i := range entries {
		view.Notes = append(view.Notes, entryView(&entries[i]))
	}
	return &view, nil
}

// CreateEntry adds a note owned by the caller.
func (s *NoteService) CreateEntry(ctx context.Context, callerID string, projectID uint, title, description string) (*NoteEntryView, error) {
	if err := requireMember(ctx, s.projects, projectID, callerID); err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	module, err := s.notes.EnsureModule(ctx, projectID)
	if err != nil {
		return nil, err
	}
	entry := models.NoteEntry{
		Title:           title,
		Description:     description,
		BackgroundColor: models.DefaultNoteColor,
		TextColor:       models.DefaultNoteTextColor,
		NoteModuleID:    module.ID,
		OwnerUserID:     callerID,
	}
	if err := s.notes.CreateEntry(ctx, &entry); err != nil {
		return nil, err
	}
	view := entryView(&entry)
	return &view, nil
}

func entryView(entry *models.NoteEntry) NoteEntryView {
	return NoteEntryView{
		ID:              entry.ID,
		Title:           entry.Title,
		Description:     entry.Description,
		BackgroundColor: entry.BackgroundColor,
		TextColor:       entry.TextColor,
		OwnerUserID:     entry.OwnerUserID,
		CreatedAt:       entry.CreatedAt,
	}
}
