package tui

import "github.com/msagdeev/go-fit-tracker/models"

// NavigateTo switches the [RootModel] router to another page. Payload, when
// non-nil, is delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload interface{}
}

// LoginResult is produced by the async login command. A nil Err means the
// session is established; [RootModel] then finishes the login flow.
type LoginResult struct {
	Err  error
	User models.User
}

// RegisterResult is produced by the async registration command.
type RegisterResult struct {
	Err   error
	Email string
}

// RegisterSuccessNotice is passed back to the menu page after a successful
// registration so it can show a confirmation line.
type RegisterSuccessNotice struct {
	Email string
}
