package model

import (
	"time"

	stuModel "sekolahku_backend/internals/features/students/model"
)

// AchievementModel adalah catatan prestasi siswa. event_date disimpan apa
// adanya dalam format D/M/Y (kontrak lama); achievement_documentations adalah
// daftar nama file yang digabung koma, default string kosong (tidak pernah NULL).
type AchievementModel struct {
	ID                        uint    `gorm:"primaryKey" json:"id"`
	EventName                 string  `gorm:"type:varchar(160);not null;column:event_name" json:"event_name"`
	Organizer                 string  `gorm:"type:varchar(160);not null;column:organizer" json:"organizer"`
	EventDate                 string  `gorm:"type:varchar(10);not null;column:event_date" json:"event_date"`
	AchievementDocumentations string  `gorm:"type:text;not null;default:'';column:achievement_documentations" json:"achievement_documentations"`
	AchievementCharter        *string `gorm:"type:varchar(255);column:achievement_charter" json:"achievement_charter"`
	AchievementRankID         uint    `gorm:"not null;column:achievement_rank_id" json:"achievement_rank_id"`
	AchievementCategoryID     uint    `gorm:"not null;column:achievement_category_id" json:"achievement_category_id"`
	Slug                      string  `gorm:"type:varchar(200);not null;uniqueIndex" json:"slug"`

	AchievementRank     *AchievementRankModel     `gorm:"foreignKey:AchievementRankID" json:"achievement_rank,omitempty"`
	AchievementCategory *AchievementCategoryModel `gorm:"foreignKey:AchievementCategoryID" json:"achievement_category,omitempty"`
	Students            []stuModel.StudentModel   `gorm:"many2many:achievement_student;joinForeignKey:AchievementID;joinReferences:StudentID" json:"students,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AchievementModel) TableName() string {
	return "achievements"
}

// AchievementRankModel adalah data referensi peringkat (mis. "Juara 1").
type AchievementRankModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Rank string `gorm:"type:varchar(80);not null;column:rank" json:"rank"`
}

func (AchievementRankModel) TableName() string {
	return "achievement_ranks"
}

// AchievementCategoryModel adalah data referensi kategori lomba.
type AchievementCategoryModel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Category string `gorm:"type:varchar(80);not null;column:category" json:"category"`
}

func (AchievementCategoryModel) TableName() string {
	return "achievement_categories"
}

// AchievementStudentModel adalah baris tabel relasi achievement_student
// (tanpa atribut tambahan). Dipakai repo asosiasi untuk link/unlink eksplisit.
type AchievementStudentModel struct {
	AchievementID uint `gorm:"primaryKey;column:achievement_id" json:"achievement_id"`
	StudentID     uint `gorm:"primaryKey;column:student_id" json:"student_id"`
}

func (AchievementStudentModel) TableName() string {
	return "achievement_student"
}
