package dto

import (
	"fmt"
	"testing"
)

func TestValidateEventDate(t *testing.T) {
	cases := []struct {
		in      string
		wantErr bool
	}{
		{"12/05/2023", false},
		{"1/1/1", false},
		{"31/12/2026", false},
		{"30/02/2023", false}, // kebenaran kalender tidak dicek
		{"", true},
		{"12-05-2023", true},
		{"12/05", true},
		{"12/05/2023/1", true},
		{"ab/05/2023", true},
		{"0/05/2023", true},
		{"32/05/2023", true},
		{"12/0/2023", true},
		{"12/13/2023", true},
		{"12/05/0", true},
		{"31/12/20261", true}, // tahun >4 digit tidak muat kolom
		{"012/1/2026", true},
		{"1/012/2026", true},
	}
	for _, tc := range cases {
		err := ValidateEventDate(tc.in)
		if tc.wantErr && err == nil {
			t.Errorf("ValidateEventDate(%q) = nil, want error", tc.in)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("ValidateEventDate(%q) = %v, want nil", tc.in, err)
		}
	}
}

func TestEventDateYear(t *testing.T) {
	if got := EventDateYear("12/05/2023"); got != "2023" {
		t.Fatalf("EventDateYear = %q, want %q", got, "2023")
	}
	if got := EventDateYear(" 1/2/1999 "); got != "1999" {
		t.Fatalf("EventDateYear = %q, want %q", got, "1999")
	}
}

func TestAchievementSlug(t *testing.T) {
	got := AchievementSlug("Lomba Debat", "12/05/2023", "Juara 1")
	want := "lomba-debat-12-05-2023-juara-1"
	if got != want {
		t.Fatalf("AchievementSlug = %q, want %q", got, want)
	}
}

func TestDocumentationFilename(t *testing.T) {
	got := DocumentationFilename("Lomba Debat", "Dinas Pendidikan", "12/05/2023", 0, "jpg")
	want := "dokumentasi-lomba-debat-2023-dinas-pendidikan-0.jpg"
	if got != want {
		t.Fatalf("DocumentationFilename = %q, want %q", got, want)
	}

	// Index harus membedakan tiap file dalam satu batch.
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		name := DocumentationFilename("Lomba Debat", "Dinas Pendidikan", "12/05/2023", i, "png")
		if seen[name] {
			t.Fatalf("nama dokumentasi duplikat pada index %d: %s", i, name)
		}
		seen[name] = true
		wantSuffix := fmt.Sprintf("-%d.png", i)
		if name[len(name)-len(wantSuffix):] != wantSuffix {
			t.Fatalf("nama %q tidak diakhiri %q", name, wantSuffix)
		}
	}
}

func TestCharterFilename(t *testing.T) {
	got := CharterFilename("Olimpiade Sains", "Kemdikbud", "03/09/2024", "pdf")
	want := "piagam-olimpiade-sains-2024-kemdikbud.pdf"
	if got != want {
		t.Fatalf("CharterFilename = %q, want %q", got, want)
	}
}
