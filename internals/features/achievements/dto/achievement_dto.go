package dto

import (
	"strings"

	model "sekolahku_backend/internals/features/achievements/model"
)

/* ===================== REQUESTS ===================== */

// CreateAchievementRequest adalah input create/update yang sudah diketik
// (bukan akses atribut dinamis): field wajib divalidasi fail-closed lewat
// validator, file & daftar siswa menyusul dari multipart form.
type CreateAchievementRequest struct {
	NamaAcara     string `json:"nama_acara" form:"nama_acara" validate:"required"`
	Penyelenggara string `json:"penyelenggara" form:"penyelenggara" validate:"required"`
	TanggalAcara  string `json:"tanggal_acara" form:"tanggal_acara" validate:"required"`
	IDJuara       uint   `json:"id_juara" form:"id_juara" validate:"required"`
	IDKategori    uint   `json:"id_kategori" form:"id_kategori" validate:"required"`

	// CSV opsional: siswa by id internal ATAU by NISN.
	IDSiswa   string `json:"id_siswa" form:"id_siswa"`
	NISNSiswa string `json:"nisn_siswa" form:"nisn_siswa"`
}

// ToModel membangun record baru; dokumentasi/piagam/slug diisi controller
// setelah file tersimpan.
func (r CreateAchievementRequest) ToModel() *model.AchievementModel {
	return &model.AchievementModel{
		EventName:             strings.TrimSpace(r.NamaAcara),
		Organizer:             strings.TrimSpace(r.Penyelenggara),
		EventDate:             strings.TrimSpace(r.TanggalAcara),
		AchievementRankID:     r.IDJuara,
		AchievementCategoryID: r.IDKategori,
	}
}

/* ===================== RESPONSES ===================== */

// StudentLite adalah proyeksi siswa pada resource prestasi (id, nama, nisn saja).
type StudentLite struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	NISN     string `json:"nisn"`
}

// AchievementResource memetakan record + relasinya ke kontrak JSON eksternal.
type AchievementResource struct {
	NamaAcara        string        `json:"nama_acara"`
	Penyelenggara    string        `json:"penyelenggara"`
	TanggalAcara     string        `json:"tanggal_acara"`
	Slug             string        `json:"slug"`
	DokumentasiAcara string        `json:"dokumentasi_acara"`
	Piagam           *string       `json:"piagam"`
	KategoriJuara    string        `json:"kategori_juara"`
	KategoriLomba    string        `json:"kategori_lomba"`
	Siswa            []StudentLite `json:"siswa"`
}

func NewAchievementResource(m *model.AchievementModel) *AchievementResource {
	if m == nil {
		return nil
	}
	r := &AchievementResource{
		NamaAcara:        m.EventName,
		Penyelenggara:    m.Organizer,
		TanggalAcara:     m.EventDate,
		Slug:             m.Slug,
		DokumentasiAcara: m.AchievementDocumentations,
		Piagam:           m.AchievementCharter,
		Siswa:            make([]StudentLite, 0, len(m.Students)),
	}
	if m.AchievementRank != nil {
		r.KategoriJuara = m.AchievementRank.Rank
	}
	if m.AchievementCategory != nil {
		r.KategoriLomba = m.AchievementCategory.Category
	}
	for _, s := range m.Students {
		r.Siswa = append(r.Siswa, StudentLite{ID: s.ID, FullName: s.FullName, NISN: s.NISN})
	}
	return r
}

/* ===================== MUTATION ENVELOPE ===================== */

type AchievementMutationData struct {
	NamaAcara     string `json:"nama_acara"`
	Penyelenggara string `json:"penyelenggara"`
	TanggalAcara  string `json:"tanggal_acara"`
	Juara         string `json:"juara"`
	Kategori      string `json:"kategori"`
	// Kontrak lama: string "true" / "null", bukan boolean.
	Dokumentasi string `json:"dokumentasi"`
	Piagam      string `json:"piagam"`
}

type AchievementMutationResponse struct {
	Status string                  `json:"status"`
	Pesan  string                  `json:"pesan"`
	Data   AchievementMutationData `json:"data"`
}

// MutationEnvelope membungkus payload sukses create/update persis seperti
// respons lama: array satu elemen dengan flag keberadaan file.
func MutationEnvelope(pesan string, m *model.AchievementModel, rankLabel, categoryLabel string) []AchievementMutationResponse {
	data := AchievementMutationData{
		NamaAcara:     m.EventName,
		Penyelenggara: m.Organizer,
		TanggalAcara:  m.EventDate,
		Juara:         rankLabel,
		Kategori:      categoryLabel,
		Dokumentasi:   presenceFlag(m.AchievementDocumentations != ""),
		Piagam:        presenceFlag(m.AchievementCharter != nil && *m.AchievementCharter != ""),
	}
	return []AchievementMutationResponse{{
		Status: "SUCCESS",
		Pesan:  pesan,
		Data:   data,
	}}
}

func presenceFlag(present bool) string {
	if present {
		return "true"
	}
	return "null"
}

/* ===================== COUNT REPORT ===================== */

type CategoryCount struct {
	Kategori string `json:"kategori"`
	Total    int64  `json:"total"`
}

type AchievementCountData struct {
	JumlahPrestasi int64           `json:"jumlah_prestasi"`
	DetailJumlah   []CategoryCount `json:"detail_jumlah"`
}
