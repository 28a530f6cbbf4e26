package helper

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Bucket logis. Nama direktori publik lama dipertahankan sebagai kontrak.
const (
	BucketAchievementDocumentation = "achievement_documentation"
	BucketAchievementCharter       = "achievements_charter"
	BucketStudentImages            = "student_images"
	BucketGraduatedDocument        = "graduated_document"
)

// Storage adalah kapabilitas penyimpanan file ber-bucket yang di-inject ke
// controller, memisahkan kebijakan penamaan dari path fisik.
type Storage interface {
	Save(fh *multipart.FileHeader, bucket, name string) error
	Remove(bucket, name string) error
	PublicURL(bucket, name string) string
}

// LocalStorage menyimpan di bawah direktori publik lokal
// (Root/<bucket>/<name>) dan melayani kembali lewat /images/<bucket>/<name>.
type LocalStorage struct {
	Root    string // mis. ./public/images
	BaseURL string // mis. http://localhost:3000
}

func NewLocalStorage(root, baseURL string) *LocalStorage {
	return &LocalStorage{Root: root, BaseURL: baseURL}
}

func (s *LocalStorage) Save(fh *multipart.FileHeader, bucket, name string) error {
	dir := filepath.Join(s.Root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("gagal membuat direktori %s: %w", dir, err)
	}

	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("gagal membuka file upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("gagal membuat file tujuan: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("gagal menulis file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Remove(bucket, name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Root, bucket, name))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalStorage) PublicURL(bucket, name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimRight(s.BaseURL, "/") + "/images/" + bucket + "/" + url.PathEscape(name)
}

// ValidateImage memastikan upload benar-benar gambar yang bisa didecode
// (jpeg/png/webp), bukan sekadar cek ekstensi.
func ValidateImage(fh *multipart.FileHeader) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	if _, err := imaging.Decode(src); err != nil {
		return fmt.Errorf("bukan file gambar yang valid: %w", err)
	}
	return nil
}

// FileExt mengembalikan ekstensi file tanpa titik, lower-case ("jpg", "pdf").
func FileExt(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

var allowedCharterExt = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "pdf": {},
}

// IsAllowedCharter cek ekstensi piagam (mimes:png,jpg,jpeg,pdf pada kontrak lama).
func IsAllowedCharter(filename string) bool {
	_, ok := allowedCharterExt[FileExt(filename)]
	return ok
}

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return reUnsafeFilename.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename membuat nama unik untuk upload bebas (foto siswa dsb).
func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}
