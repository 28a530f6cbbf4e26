package dto

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	model "sekolahku_backend/internals/features/students/model"
	helper "sekolahku_backend/internals/helpers"
)

func sampleStudent() *model.StudentModel {
	return &model.StudentModel{
		ID:              3,
		NIS:             "230001",
		NISN:            "0051234567",
		FullName:        "Budi Santoso",
		BirthDate:       datatypes.Date(time.Date(2005, 8, 17, 0, 0, 0, 0, time.UTC)),
		BirthPlace:      "Bandung",
		Gender:          "L",
		Slug:            "budi-santoso",
		Major:           "IPA",
		Image:           "20230101-abc-budi.jpg",
		AcademicYearID:  2,
		AcademicYear:    &model.AcademicYearModel{ID: 2, YearStart: 2022, YearEnd: 2023},
		GraduatedDocument: &model.GraduatedDocumentModel{
			StudentID:  3,
			IjazahFile: "ijazah-budi.pdf",
			SkhunFile:  "skhun-budi.pdf",
		},
	}
}

func TestNewGraduatedDocumentResource(t *testing.T) {
	st := helper.NewLocalStorage("./public/images", "http://localhost:3000")

	r := NewGraduatedDocumentResource(sampleStudent(), st)

	if r.NamaLengkap != "Budi Santoso" || r.NISN != "0051234567" || r.NIS != "230001" {
		t.Fatalf("identitas salah: %+v", r)
	}
	if r.TanggalLahir != "2005-08-17" {
		t.Fatalf("tanggal_lahir = %q", r.TanggalLahir)
	}
	if r.TahunLulus != "2022/2023" {
		t.Fatalf("tahun_lulus = %q", r.TahunLulus)
	}
	wantFoto := "http://localhost:3000/images/student_images/20230101-abc-budi.jpg"
	if r.FotoSiswa != wantFoto {
		t.Fatalf("foto_siswa = %q, want %q", r.FotoSiswa, wantFoto)
	}
	wantIjazah := "http://localhost:3000/images/graduated_document/ijazah-budi.pdf"
	if r.Ijazah != wantIjazah {
		t.Fatalf("ijazah = %q, want %q", r.Ijazah, wantIjazah)
	}
	wantSkhun := "http://localhost:3000/images/graduated_document/skhun-budi.pdf"
	if r.Skhun != wantSkhun {
		t.Fatalf("skhun = %q, want %q", r.Skhun, wantSkhun)
	}
}

func TestNewGraduatedDocumentResourceWithoutRelations(t *testing.T) {
	st := helper.NewLocalStorage("./public/images", "http://localhost:3000")

	m := sampleStudent()
	m.GraduatedDocument = nil
	m.AcademicYear = nil
	m.Image = ""

	r := NewGraduatedDocumentResource(m, st)
	if r.Ijazah != "" || r.Skhun != "" {
		t.Fatalf("dokumen tanpa relasi harus kosong: %+v", r)
	}
	if r.TahunLulus != "" {
		t.Fatalf("tahun_lulus tanpa relasi = %q", r.TahunLulus)
	}
	if r.FotoSiswa != "" {
		t.Fatalf("foto_siswa tanpa file = %q", r.FotoSiswa)
	}
}
