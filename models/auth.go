// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role of a platform user.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Credentials is the body of a login call.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body of a register call.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// AuthResponse is returned by login and register. The token is opaque to the
// client.
type AuthResponse struct {
	Token string `json:"token" validate:"required"`
	User  *User  `json:"user,omitempty"`
}

// User is the account a token was issued for.
type User struct {
	ID     ID     `json:"id" validate:"required"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role,omitempty" validate:"omitempty,oneof=teacher student"`
	Avatar string `json:"avatar,omitempty"`
}
