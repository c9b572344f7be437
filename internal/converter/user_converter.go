package converter

import (
	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// Department and avatar are filled in when the doctor profile is loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		NIC:       user.NIC,
		DOB:       user.DOB.Format("2006-01-02"),
		Gender:    user.Gender,
		Role:      user.RoleName(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		response.Department = user.DoctorProfile.Department
		response.AvatarURL = user.DoctorProfile.AvatarURL
	}

	return response
}

// DoctorProfileToResponse converts a doctor aggregate (profile + user) to a
// UserResponse with the doctor fields set.
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.UserResponse {
	if profile == nil {
		return nil
	}

	user := profile.User
	user.DoctorProfile = &entity.DoctorProfile{
		UserID:     profile.UserID,
		Department: profile.Department,
		AvatarURL:  profile.AvatarURL,
	}
	if user.RoleID == 0 {
		user.RoleID = entity.RoleIDDoctor
	}

	return UserToResponse(&user)
}

// DoctorProfilesToResponses converts a list of doctor aggregates
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *DoctorProfileToResponse(&profiles[i]))
	}
	return responses
}
