package models

// KanbanBoard is the single board of a project, created lazily on first
// access and removed with the project.
type KanbanBoard struct {
	ID        uint `gorm:"primaryKey"`
	ProjectID uint `gorm:"uniqueIndex;not null"`

	Columns []KanbanColumn `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}

type KanbanColumn struct {
	ID    uint   `gorm:"primaryKey"`
	Title string `gorm:"not null;size:200"`

	// SortOrder is a float so a column can be moved between two
	// siblings by writing any value strictly between theirs.
	SortOrder float64 `gorm:"not null"`

	BackgroundColor string `gorm:"not null;default:'#2c3e50'"`
	TextColor       string `gorm:"not null;default:'#ffffff'"`

	BoardID uint           `gorm:"not null;index"`
	Tickets []KanbanTicket `gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE"`
}

type KanbanTicket struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"not null;size:200"`
	Description string  `gorm:"type:text"`
	SortOrder   float64 `gorm:"not null"`

	BackgroundColor string `gorm:"not null;default:'#ecf0f1'"`
	TextColor       string `gorm:"not null;default:'#34495e'"`

	ColumnID uint `gorm:"not null;index"`

	OwnerUserID string `gorm:"type:uuid;not null"`
	Owner       *User  `gorm:"foreignKey:OwnerUserID"`

	AssigneeID *string `gorm:"type:uuid"`
	Assignee   *User   `gorm:"foreignKey:AssigneeID"`
}

const (
	DefaultColumnColor     = "#2c3e50"
	DefaultColumnTextColor = "#ffffff"
	DefaultTicketColor     = "#ecf0f1"
	DefaultTicketTextColor = "#34495e"
)
