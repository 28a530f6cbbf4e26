package repo

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	achModel "sekolahku_backend/internals/features/achievements/model"
	stuModel "sekolahku_backend/internals/features/students/model"
)

// ErrStudentNotFound: minimal satu identitas siswa pada batch tidak bisa
// di-resolve; seluruh operasi harus dibatalkan (all-or-nothing).
var ErrStudentNotFound = errors.New("salah satu siswa tidak ditemukan")

// AchievementStudentRepo adalah repository eksplisit untuk tabel relasi
// achievement_student (pengganti helper relasi framework lama).
type AchievementStudentRepo struct{}

func NewAchievementStudentRepo() *AchievementStudentRepo {
	return &AchievementStudentRepo{}
}

func splitCSV(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ResolveByIDs memetakan CSV id internal ke record siswa, urut sesuai input.
// Identitas pertama yang tidak ketemu menghentikan resolve (ErrStudentNotFound).
func (r *AchievementStudentRepo) ResolveByIDs(ctx context.Context, tx *gorm.DB, csv string) ([]stuModel.StudentModel, error) {
	var out []stuModel.StudentModel
	for _, raw := range splitCSV(csv) {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, ErrStudentNotFound
		}
		var s stuModel.StudentModel
		if err := tx.WithContext(ctx).First(&s, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStudentNotFound
			}
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ResolveByNISN sama seperti ResolveByIDs namun memakai nomor induk nasional.
func (r *AchievementStudentRepo) ResolveByNISN(ctx context.Context, tx *gorm.DB, csv string) ([]stuModel.StudentModel, error) {
	var out []stuModel.StudentModel
	for _, nisn := range splitCSV(csv) {
		var s stuModel.StudentModel
		if err := tx.WithContext(ctx).Where("nisn = ?", nisn).First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStudentNotFound
			}
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Link menambahkan satu baris relasi; idempoten terhadap duplikat.
func (r *AchievementStudentRepo) Link(tx *gorm.DB, achievementID, studentID uint) error {
	row := achModel.AchievementStudentModel{
		AchievementID: achievementID,
		StudentID:     studentID,
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

// UnlinkAll membuang seluruh baris relasi milik satu prestasi (dipakai delete).
func (r *AchievementStudentRepo) UnlinkAll(tx *gorm.DB, achievementID uint) error {
	return tx.Where("achievement_id = ?", achievementID).
		Delete(&achModel.AchievementStudentModel{}).Error
}
