package dto

import (
	"testing"

	model "sekolahku_backend/internals/features/achievements/model"
	stuModel "sekolahku_backend/internals/features/students/model"
)

func TestToModelTrimsInput(t *testing.T) {
	req := CreateAchievementRequest{
		NamaAcara:     "  Lomba Debat ",
		Penyelenggara: " Dinas Pendidikan ",
		TanggalAcara:  " 12/05/2023 ",
		IDJuara:       1,
		IDKategori:    2,
	}
	m := req.ToModel()
	if m.EventName != "Lomba Debat" || m.Organizer != "Dinas Pendidikan" || m.EventDate != "12/05/2023" {
		t.Fatalf("field tidak di-trim: %+v", m)
	}
	if m.AchievementRankID != 1 || m.AchievementCategoryID != 2 {
		t.Fatalf("referensi juara/kategori salah: %+v", m)
	}
}

func TestMutationEnvelopeFlags(t *testing.T) {
	charter := "piagam-x-2023-y.pdf"
	cases := []struct {
		name    string
		docs    string
		charter *string
		wantDoc string
		wantPgm string
	}{
		{"keduanya ada", "a.jpg,b.jpg", &charter, "true", "true"},
		{"tanpa file", "", nil, "null", "null"},
		{"hanya dokumentasi", "a.jpg", nil, "true", "null"},
		{"piagam string kosong", "", strPtr(""), "null", "null"},
	}
	for _, tc := range cases {
		m := &model.AchievementModel{
			EventName:                 "Lomba Debat",
			Organizer:                 "Dinas",
			EventDate:                 "12/05/2023",
			AchievementDocumentations: tc.docs,
			AchievementCharter:        tc.charter,
		}
		out := MutationEnvelope("Prestasi baru berhasil ditambahkan", m, "Juara 1", "Debat")
		if len(out) != 1 {
			t.Fatalf("%s: envelope harus array satu elemen, dapat %d", tc.name, len(out))
		}
		el := out[0]
		if el.Status != "SUCCESS" {
			t.Errorf("%s: status = %q", tc.name, el.Status)
		}
		if el.Pesan != "Prestasi baru berhasil ditambahkan" {
			t.Errorf("%s: pesan = %q", tc.name, el.Pesan)
		}
		if el.Data.Dokumentasi != tc.wantDoc {
			t.Errorf("%s: dokumentasi = %q, want %q", tc.name, el.Data.Dokumentasi, tc.wantDoc)
		}
		if el.Data.Piagam != tc.wantPgm {
			t.Errorf("%s: piagam = %q, want %q", tc.name, el.Data.Piagam, tc.wantPgm)
		}
		if el.Data.Juara != "Juara 1" || el.Data.Kategori != "Debat" {
			t.Errorf("%s: label referensi salah: %+v", tc.name, el.Data)
		}
	}
}

func TestNewAchievementResource(t *testing.T) {
	charter := "piagam-a-2023-b.pdf"
	m := &model.AchievementModel{
		EventName:                 "Lomba Debat",
		Organizer:                 "Dinas",
		EventDate:                 "12/05/2023",
		Slug:                      "lomba-debat-12-05-2023-juara-1",
		AchievementDocumentations: "d1.jpg,d2.jpg",
		AchievementCharter:        &charter,
		AchievementRank:           &model.AchievementRankModel{ID: 1, Rank: "Juara 1"},
		AchievementCategory:       &model.AchievementCategoryModel{ID: 2, Category: "Debat"},
		Students: []stuModel.StudentModel{
			{ID: 7, FullName: "Budi Santoso", NISN: "0051234567"},
		},
	}

	r := NewAchievementResource(m)
	if r.KategoriJuara != "Juara 1" || r.KategoriLomba != "Debat" {
		t.Fatalf("label referensi salah: %+v", r)
	}
	if r.DokumentasiAcara != "d1.jpg,d2.jpg" {
		t.Fatalf("dokumentasi_acara = %q", r.DokumentasiAcara)
	}
	if r.Piagam == nil || *r.Piagam != charter {
		t.Fatalf("piagam = %v", r.Piagam)
	}
	if len(r.Siswa) != 1 || r.Siswa[0].FullName != "Budi Santoso" || r.Siswa[0].NISN != "0051234567" {
		t.Fatalf("proyeksi siswa salah: %+v", r.Siswa)
	}

	// Relasi belum di-preload → label kosong, siswa slice kosong (bukan nil).
	bare := NewAchievementResource(&model.AchievementModel{EventName: "X"})
	if bare.KategoriJuara != "" || bare.KategoriLomba != "" {
		t.Fatalf("label harus kosong tanpa preload: %+v", bare)
	}
	if bare.Siswa == nil {
		t.Fatal("siswa harus slice kosong, bukan nil")
	}
}

func strPtr(s string) *string { return &s }
