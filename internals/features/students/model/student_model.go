package model

import (
	"time"

	"gorm.io/datatypes"
)

// StudentModel adalah siswa; relasi many-to-many ke prestasi lewat tabel
// achievement_student (modelnya ada di fitur achievements).
type StudentModel struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	NIS            string         `gorm:"type:varchar(20);not null;column:nis" json:"nis"`
	NISN           string         `gorm:"type:varchar(20);not null;uniqueIndex;column:nisn" json:"nisn"`
	FullName       string         `gorm:"type:varchar(120);not null;column:full_name" json:"full_name"`
	BirthDate      datatypes.Date `gorm:"column:birth_date" json:"birth_date"`
	BirthPlace     string         `gorm:"type:varchar(80);column:birth_place" json:"birth_place"`
	Gender         string         `gorm:"type:varchar(12);column:gender" json:"gender"`
	Slug           string         `gorm:"type:varchar(160);uniqueIndex" json:"slug"`
	Major          string         `gorm:"type:varchar(80);column:major" json:"major"`
	Image          string         `gorm:"type:varchar(255);column:image" json:"image"`
	AcademicYearID uint           `gorm:"column:academic_year_id" json:"academic_year_id"`

	AcademicYear      *AcademicYearModel      `gorm:"foreignKey:AcademicYearID" json:"academic_year,omitempty"`
	GraduatedDocument *GraduatedDocumentModel `gorm:"foreignKey:StudentID" json:"graduated_document,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}

type AcademicYearModel struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	YearStart int  `gorm:"not null;column:year_start" json:"year_start"`
	YearEnd   int  `gorm:"not null;column:year_end" json:"year_end"`
}

func (AcademicYearModel) TableName() string {
	return "academic_years"
}

// GraduatedDocumentModel menyimpan nama file ijazah & skhun siswa yang lulus.
type GraduatedDocumentModel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StudentID  uint      `gorm:"not null;uniqueIndex;column:student_id" json:"student_id"`
	IjazahFile string    `gorm:"type:varchar(255);column:ijazah_file" json:"ijazah_file"`
	SkhunFile  string    `gorm:"type:varchar(255);column:skhun_file" json:"skhun_file"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GraduatedDocumentModel) TableName() string {
	return "graduated_documents"
}
