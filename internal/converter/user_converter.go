package converter

import (
	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
)

// UserToResponse converts a User entity to its public projection. The
// password digest never crosses this boundary.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
}

func UsersToResponse(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToResponse(&users[i]))
	}
	return responses
}
