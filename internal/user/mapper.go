package user

import "tyzox-be/internal/handler/dto"

func ToResponse(u *User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Email: u.Email, Role: string(u.Role)}
}
