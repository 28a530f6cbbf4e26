package dto

import (
	"fmt"
	"time"

	model "sekolahku_backend/internals/features/students/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ===================== RESPONSES ===================== */

// GraduatedDocumentResource memetakan siswa lulus + dokumennya ke kontrak
// eksternal lama (kunci berbahasa Indonesia, URL absolut untuk file).
type GraduatedDocumentResource struct {
	IDSiswa         uint   `json:"id_siswa"`
	NamaLengkap     string `json:"nama_lengkap"`
	NISN            string `json:"nisn"`
	NIS             string `json:"nis"`
	TanggalLahir    string `json:"tanggal_lahir"`
	TempatLahir     string `json:"tempat_lahir"`
	JenisKelamin    string `json:"jenis_kelamin"`
	Slug            string `json:"slug"`
	Jurusan         string `json:"jurusan"`
	IDTahunAkademik uint   `json:"id_tahun_akademik"`
	FotoSiswa       string `json:"foto_siswa"`
	Ijazah          string `json:"ijazah"`
	Skhun           string `json:"skhun"`
	TahunLulus      string `json:"tahun_lulus"`
}

// NewGraduatedDocumentResource membangun presenter dari record siswa yang
// sudah di-preload AcademicYear + GraduatedDocument.
func NewGraduatedDocumentResource(m *model.StudentModel, st helper.Storage) *GraduatedDocumentResource {
	if m == nil {
		return nil
	}

	r := &GraduatedDocumentResource{
		IDSiswa:         m.ID,
		NamaLengkap:     m.FullName,
		NISN:            m.NISN,
		NIS:             m.NIS,
		TanggalLahir:    time.Time(m.BirthDate).Format("2006-01-02"),
		TempatLahir:     m.BirthPlace,
		JenisKelamin:    m.Gender,
		Slug:            m.Slug,
		Jurusan:         m.Major,
		IDTahunAkademik: m.AcademicYearID,
		FotoSiswa:       st.PublicURL(helper.BucketStudentImages, m.Image),
	}
	if m.GraduatedDocument != nil {
		r.Ijazah = st.PublicURL(helper.BucketGraduatedDocument, m.GraduatedDocument.IjazahFile)
		r.Skhun = st.PublicURL(helper.BucketGraduatedDocument, m.GraduatedDocument.SkhunFile)
	}
	if m.AcademicYear != nil {
		r.TahunLulus = fmt.Sprintf("%d/%d", m.AcademicYear.YearStart, m.AcademicYear.YearEnd)
	}
	return r
}
