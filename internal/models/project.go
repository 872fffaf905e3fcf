package models

import "time"

const (
	RoleOwner  = "Owner"
	RoleAdmin  = "Admin"
	RoleMember = "Member"
)

// DefaultProjectColor is applied when a create request carries no color.
const DefaultProjectColor = "#3498db"

type Project struct {
	ID              uint   `gorm:"primaryKey"`
	Title           string `gorm:"not null;size:200"`
	Description     string `gorm:"type:text"`
	BackgroundColor string `gorm:"not null;default:'#3498db'"`

	// OwnerID is set once at creation and never changes.
	OwnerID string `gorm:"type:uuid;not null;index"`
	Owner   *User  `gorm:"foreignKey:OwnerID"`

	Members     []ProjectMember `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	KanbanBoard *KanbanBoard    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	NoteModule  *NoteModule     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// ProjectMember ties a user to a project with a role. At most one row
// exists per (project, user) pair; the owner's row is inserted in the
// same transaction as the project itself.
type ProjectMember struct {
	ProjectID uint   `gorm:"primaryKey;autoIncrement:false"`
	UserID    string `gorm:"type:uuid;primaryKey"`
	Role      string `gorm:"not null;default:'Member'"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ProjectMember) TableName() string { return "project_members" }
