package dto

import "strings"

// AddAbsenceRequest: username adalah aktor yang dicek role-nya,
// student_name adalah siswa yang dicatat absen.
type AddAbsenceRequest struct {
	UserName    string `json:"username" validate:"required"`
	StudentName string `json:"student_name" validate:"required"`
	Class       string `json:"class" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Status      string `json:"status" validate:"required"`
}

func (r *AddAbsenceRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.StudentName = strings.TrimSpace(r.StudentName)
	r.Class = strings.TrimSpace(r.Class)
	r.Date = strings.TrimSpace(r.Date)
	r.Status = strings.TrimSpace(r.Status)
}

// AbsenceItem adalah proyeksi untuk listing publik, tanpa absence_id.
type AbsenceItem struct {
	StudentName string `json:"student_name"`
	Class       string `json:"class"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}
