package dto

import "strings"

// ScheduleRequest dipakai add-schedule dan edit-schedule (field sama persis).
type ScheduleRequest struct {
	UserName string `json:"username" validate:"required"`
	Day      string `json:"day" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Period   string `json:"period" validate:"required"`
}

func (r *ScheduleRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Day = strings.TrimSpace(r.Day)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Period = strings.TrimSpace(r.Period)
}

type DeleteScheduleRequest struct {
	UserName string `json:"username" validate:"required"`
}
