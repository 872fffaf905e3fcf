package service

import "errors"

var (
	// ErrProjectNotFound covers both a missing project and a project
	// the caller is not a member of. Conflating the two keeps
	// unauthorized callers from probing which ids exist.
	ErrProjectNotFound = errors.New("project not found")

	ErrTitleRequired = errors.New("title is required")
	ErrUserNotFound  = errors.New("user not found")
	ErrNotOwner      = errors.New("only the project owner may do this")

	ErrColumnNotFound   = errors.New("column not found")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrAssigneeNotFound = errors.New("assignee not found")

	ErrFieldsRequired     = errors.New("username, email and password are required")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
