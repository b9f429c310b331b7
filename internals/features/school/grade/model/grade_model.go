package model

// GradeModel merepresentasikan tabel grades.
// Baris dibuat per (student_name, subject) oleh operasi init dengan grade
// masih NULL; nilainya baru terisi lewat update per pasangan kunci itu.
type GradeModel struct {
	GradeID     uint   `gorm:"primaryKey;autoIncrement;column:grade_id" json:"-"`
	StudentName string `gorm:"size:100;not null;index;column:student_name" json:"student_name"`
	Subject     string `gorm:"size:50;not null" json:"subject"`
	Grade       *int   `gorm:"column:grade" json:"grade"`
}

func (GradeModel) TableName() string {
	return "grades"
}
