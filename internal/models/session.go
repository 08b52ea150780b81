package models

import "time"

type Session struct {
	ID        string    `db:"id"`
	UserID    int64     `db:"user_id"`
	Remember  bool      `db:"remember"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
