package model

// ScheduleModel merepresentasikan tabel schedules.
// Kepemilikan dicek lewat kesamaan nilai kolom username, bukan foreign key;
// mutasi selalu memfilter schedule_id DAN username sekaligus.
type ScheduleModel struct {
	ScheduleID uint   `gorm:"primaryKey;autoIncrement;column:schedule_id" json:"schedule_id"`
	UserName   string `gorm:"size:50;not null;index;column:username" json:"username"`
	Day        string `gorm:"size:10;not null" json:"day"`
	Subject    string `gorm:"size:100;not null" json:"subject"`
	Period     string `gorm:"size:20;not null" json:"period"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
