package dto

type DoctorListResponse struct {
	Doctors []UserResponse `json:"doctors"`
	Total   int            `json:"total"`
}
