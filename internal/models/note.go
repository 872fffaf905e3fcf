package models

import "time"

// NoteModule is the single note collection of a project, created lazily
// like the kanban board.
type NoteModule struct {
	ID        uint `gorm:"primaryKey"`
	ProjectID uint `gorm:"uniqueIndex;not null"`

	Notes []NoteEntry `gorm:"foreignKey:NoteModuleID;constraint:OnDelete:CASCADE"`
}

type NoteEntry struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null;size:200"`
	Description string `gorm:"type:text"`

	BackgroundColor string `gorm:"not null;default:'#f1c40f'"`
	TextColor       string `gorm:"not null;default:'#34495e'"`

	NoteModuleID uint `gorm:"not null;index"`

	OwnerUserID string `gorm:"type:uuid;not null"`
	Owner       *User  `gorm:"foreignKey:OwnerUserID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

const (
	DefaultNoteColor     = "#f1c40f"
	DefaultNoteTextColor = "#34495e"
)
