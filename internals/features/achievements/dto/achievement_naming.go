package dto

import (
	"fmt"
	"strconv"
	"strings"

	helper "sekolahku_backend/internals/helpers"
)

// Format tanggal acara: D/M/Y day-first, tiga segmen numerik, dipisah "/".
// Kebenaran kalender tidak dicek (kompatibilitas dengan perilaku lama),
// hanya rentang hari 1-31 dan bulan 1-12.
func ValidateEventDate(s string) error {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return fmt.Errorf("tanggal_acara harus berformat D/M/Y")
	}
	// Panjang segmen dibatasi 2/2/4 digit supaya nilai selalu muat kolom
	// varchar(10) tempat tanggal disimpan verbatim.
	segMax := [3]int{2, 2, 4}
	nums := make([]int, 3)
	for i, p := range parts {
		if p == "" || len(p) > segMax[i] {
			return fmt.Errorf("tanggal_acara harus berformat D/M/Y")
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("tanggal_acara harus berformat D/M/Y")
		}
		nums[i] = n
	}
	if nums[0] < 1 || nums[0] > 31 {
		return fmt.Errorf("hari pada tanggal_acara tidak valid")
	}
	if nums[1] < 1 || nums[1] > 12 {
		return fmt.Errorf("bulan pada tanggal_acara tidak valid")
	}
	if nums[2] < 1 {
		return fmt.Errorf("tahun pada tanggal_acara tidak valid")
	}
	return nil
}

// EventDateYear mengambil komponen tahun (segmen ketiga) dari tanggal D/M/Y.
func EventDateYear(eventDate string) string {
	parts := strings.Split(strings.TrimSpace(eventDate), "/")
	if len(parts) < 3 {
		return strings.TrimSpace(eventDate)
	}
	return strings.TrimSpace(parts[2])
}

// DocumentationFilename: dokumentasi-<slug(acara)>-<tahun>-<slug(penyelenggara)>-<idx>.<ext>
// idx adalah posisi zero-based file di batch upload.
func DocumentationFilename(eventName, organizer, eventDate string, index int, ext string) string {
	return fmt.Sprintf("dokumentasi-%s-%s-%s-%d.%s",
		helper.Slugify(eventName, 0),
		EventDateYear(eventDate),
		helper.Slugify(organizer, 0),
		index,
		ext,
	)
}

// CharterFilename: piagam-<slug(acara)>-<tahun>-<slug(penyelenggara)>.<ext>
func CharterFilename(eventName, organizer, eventDate, ext string) string {
	return fmt.Sprintf("piagam-%s-%s-%s.%s",
		helper.Slugify(eventName, 0),
		EventDateYear(eventDate),
		helper.Slugify(organizer, 0),
		ext,
	)
}

// AchievementSlug: slug(acara)-slug(tanggal)-slug(label juara).
// Untuk tanggal "12/05/2023" hasil slug-nya "12-05-2023".
func AchievementSlug(eventName, eventDate, rankLabel string) string {
	return helper.Slugify(eventName, 0) + "-" +
		helper.Slugify(eventDate, 0) + "-" +
		helper.Slugify(rankLabel, 0)
}
