package model

import "time"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	Admin        AdminPublic `json:"admin"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type VerifyResponse struct {
	Admin AdminPublic `json:"admin"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ChangeUsernameRequest struct {
	Password    string `json:"password"`
	NewUsername string `json:"newUsername"`
}

// AdminPublic is the part of the credential record safe to return to clients.
type AdminPublic struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// AuthAdmin is the identity carried by a verified access token.
type AuthAdmin struct {
	ID       string
	Username string
}

// Admin is the persisted credential record. RefreshTokenHash holds at most
// one value; a new login overwrites it.
type Admin struct {
	ID               string
	Username         string
	PasswordHash     string
	RefreshTokenHash *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (a *Admin) Public() AdminPublic {
	pub := AdminPublic{ID: a.ID, Username: a.Username}
	if !a.CreatedAt.IsZero() {
		created := a.CreatedAt
		pub.CreatedAt = &created
	}
	return pub
}
