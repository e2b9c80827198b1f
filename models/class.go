package models

// Class is a course a user teaches or attends.
type Class struct {
	ID          ID     `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Teacher     string `json:"teacher,omitempty"`
	Students    int    `json:"students,omitempty" validate:"gte=0"`
	Banner      string `json:"banner,omitempty"`
	Code        string `json:"code,omitempty"`
	IsOwner     bool   `json:"isOwner,omitempty"`
}

// ClassInput is the body of a create class call.
type ClassInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Schedule    string `json:"schedule,omitempty"`
	IsPrivate   bool   `json:"isPrivate,omitempty"`
}

// JoinClassRequest joins the class identified by an invite code.
type JoinClassRequest struct {
	Code string `json:"code"`
}

// LeaveClassRequest leaves a class the caller is enrolled in.
type LeaveClassRequest struct {
	ClassID ID `json:"classId"`
}
