package model

// AbsenceModel merepresentasikan tabel absences.
// Status bebas (tidak divalidasi jadi enum) dan tidak ada uniqueness pada
// (student_name, date): duplikat dibiarkan, mengikuti kontrak lama.
type AbsenceModel struct {
	AbsenceID   uint   `gorm:"primaryKey;autoIncrement;column:absence_id" json:"absence_id"`
	StudentName string `gorm:"size:100;not null;column:student_name" json:"student_name"`
	Class       string `gorm:"size:50;not null" json:"class"`
	Date        string `gorm:"size:20;not null" json:"date"`
	Status      string `gorm:"size:30;not null" json:"status"`
}

func (AbsenceModel) TableName() string {
	return "absences"
}
