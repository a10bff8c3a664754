package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	BranchIDs []string  `json:"branch_ids"`
	ExpiresAt time.Time `json:"expires_at"`
}
