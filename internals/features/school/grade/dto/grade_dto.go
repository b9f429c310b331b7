package dto

import "strings"

// UpdateGradeRequest: hanya username yang wajib; grade boleh kosong
// (NULL) mengikuti kontrak lama.
type UpdateGradeRequest struct {
	UserName string `json:"username" validate:"required"`
	Grade    *int   `json:"grade"`
}

func (r *UpdateGradeRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
}

type InitGradesRequest struct {
	UserName string `json:"username" validate:"required"`
}

func (r *InitGradesRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
}
