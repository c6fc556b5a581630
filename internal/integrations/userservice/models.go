package userservice

import "github.com/premoprojekt2024TM/Barber-sub000/internal/domain"

// User модель пользователя из сервиса профилей
type User struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"` // worker | client
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// IsWorker возвращает true, если пользователь - мастер
func (u *User) IsWorker() bool {
	return u.Role == domain.RoleWorker
}

// IsClient возвращает true, если пользователь - клиент
func (u *User) IsClient() bool {
	return u.Role == domain.RoleClient
}

// ErrorResponse модель ошибки от сервиса профилей
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
