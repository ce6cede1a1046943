package response

import (
	"bookmarket/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	BusinessID *uuid.UUID `json:"business_id,omitempty"`
}

func FromAuthorizedUserRM(rm *readmodel.AuthorizedUserRM) UserResponse {
	return UserResponse{
		ID:         rm.ID,
		Email:      rm.Email,
		Role:       rm.Role,
		BusinessID: rm.BusinessID,
	}
}
