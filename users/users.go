package users

import (
	"time"
)

// MinPasswordLength is the shortest password the mock directory accepts.
// Real validation happens server-side.
const MinPasswordLength = 6

type User struct {
	ID                   string    `json:"id"`                     // Unique identifier for the user
	Email                string    `json:"email"`                  // User's email address
	FirstName            string    `json:"firstName"`              // First name of the user
	LastName             string    `json:"lastName"`               // Last name of the user
	ProfileImage         string    `json:"profileImage,omitempty"` // Avatar URL
	IsOnboardingComplete bool      `json:"isOnboardingComplete"`   // Gates the onboarding flow
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// FullName returns "First Last".
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Clone returns a copy that can be handed out without sharing the directory's record.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// MockUsers returns the fixed development directory.
func MockUsers() []*User {
	return []*User{
		{
			ID:                   "1",
			Email:                "john@example.com",
			FirstName:            "John",
			LastName:             "Doe",
			ProfileImage:         "https://example.com/avatar1.jpg",
			IsOnboardingComplete: true,
			CreatedAt:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:            time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                   "2",
			Email:                "jane@example.com",
			FirstName:            "Jane",
			LastName:             "Smith",
			ProfileImage:         "https://example.com/avatar2.jpg",
			IsOnboardingComplete: true,
			CreatedAt:            time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			UpdatedAt:            time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		},
	}
}
