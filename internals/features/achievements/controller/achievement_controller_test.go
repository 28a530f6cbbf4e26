package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// stubStorage merekam nama file yang diminta tersimpan tanpa menyentuh disk.
type stubStorage struct {
	saved []string
}

func (s *stubStorage) Save(fh *multipart.FileHeader, bucket, name string) error {
	s.saved = append(s.saved, bucket+"/"+name)
	return nil
}

func (s *stubStorage) Remove(bucket, name string) error { return nil }

func (s *stubStorage) PublicURL(bucket, name string) string {
	return "http://test/images/" + bucket + "/" + name
}

// newTestApp memasang handler mutasi tanpa DB; jalur yang diuji di sini
// (validasi, id non-numerik) harus selesai sebelum query apa pun.
func newTestApp() (*fiber.App, *stubStorage) {
	st := &stubStorage{}
	ctrl := NewAchievementController(nil, st)
	app := fiber.New()
	app.Post("/api/achievements", ctrl.Store)
	app.Put("/api/achievements/:id", ctrl.Update)
	app.Delete("/api/achievements/:id", ctrl.Destroy)
	return app, st
}

func TestStoreEmptyFormReturnsValidationMap(t *testing.T) {
	app, st := newTestApp()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/achievements", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusExpectationFailed {
		t.Fatalf("status = %d, want 417", resp.StatusCode)
	}

	var fieldErrs map[string][]string
	if err := json.NewDecoder(resp.Body).Decode(&fieldErrs); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	for _, field := range []string{"nama_acara", "penyelenggara", "tanggal_acara", "id_juara", "id_kategori"} {
		msgs, ok := fieldErrs[field]
		if !ok || len(msgs) == 0 {
			t.Errorf("field %q tidak ada di peta error: %v", field, fieldErrs)
			continue
		}
		if msgs[0] != "The "+field+" field is required." {
			t.Errorf("pesan %q = %q", field, msgs[0])
		}
	}

	if len(st.saved) != 0 {
		t.Fatalf("gagal validasi tidak boleh menyimpan file, tersimpan: %v", st.saved)
	}
}

func TestStoreInvalidDateReturns417(t *testing.T) {
	app, st := newTestApp()

	body := `{"nama_acara":"Lomba Debat","penyelenggara":"Dinas Pendidikan",` +
		`"tanggal_acara":"2023-05-12","id_juara":1,"id_kategori":2}`
	req := httptest.NewRequest("POST", "/api/achievements", strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusExpectationFailed {
		t.Fatalf("status = %d, want 417", resp.StatusCode)
	}

	var fieldErrs map[string][]string
	if err := json.NewDecoder(resp.Body).Decode(&fieldErrs); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if _, ok := fieldErrs["tanggal_acara"]; !ok {
		t.Fatalf("tanggal_acara tidak ada di peta error: %v", fieldErrs)
	}

	if len(st.saved) != 0 {
		t.Fatalf("gagal validasi tidak boleh menyimpan file, tersimpan: %v", st.saved)
	}
}

func TestStoreInvalidFileRejectedBeforeSave(t *testing.T) {
	app, st := newTestApp()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("nama_acara", "Lomba Debat")
	_ = w.WriteField("penyelenggara", "Dinas Pendidikan")
	_ = w.WriteField("tanggal_acara", "12/05/2023")
	_ = w.WriteField("id_juara", "1")
	_ = w.WriteField("id_kategori", "2")
	part, err := w.CreateFormFile("dokumentasi", "bukan-gambar.jpg")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = part.Write([]byte("teks biasa, magic bytes bukan gambar"))
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/achievements", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusExpectationFailed {
		t.Fatalf("status = %d, want 417", resp.StatusCode)
	}

	var fieldErrs map[string][]string
	if err := json.NewDecoder(resp.Body).Decode(&fieldErrs); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if _, ok := fieldErrs["dokumentasi"]; !ok {
		t.Fatalf("dokumentasi tidak ada di peta error: %v", fieldErrs)
	}

	if len(st.saved) != 0 {
		t.Fatalf("file invalid tidak boleh tersimpan: %v", st.saved)
	}
}

func TestStoreBrokenJSONReturns400(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("POST", "/api/achievements", strings.NewReader(`{"nama_acara":`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUpdateNonNumericIDReturns404(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("PUT", "/api/achievements/bukan-angka", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var out map[string]string
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode body %q: %v", body, err)
	}
	if out["messages"] != "Data tidak ditemukan" {
		t.Fatalf("messages = %q", out["messages"])
	}
}

func TestDestroyNonNumericIDReturns404(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("DELETE", "/api/achievements/bukan-angka", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
