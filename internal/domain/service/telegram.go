package service

import "time"

// TelegramUser is the account data carried by verified Mini App init data.
type TelegramUser struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Username  string    `json:"username,omitempty"`
	AuthDate  time.Time `json:"-"`
}

// InitDataVerifier checks the signature of Telegram Mini App init data.
type InitDataVerifier interface {
	Verify(initData string) (*TelegramUser, error)
}
