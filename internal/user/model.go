package user

import (
	"time"

	"tyzox-be/internal/utils"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = utils.RoleAdmin
)

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
