package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	achDTO "sekolahku_backend/internals/features/achievements/dto"
	achModel "sekolahku_backend/internals/features/achievements/model"
	achRepo "sekolahku_backend/internals/features/achievements/repo"
	helper "sekolahku_backend/internals/helpers"
)

type AchievementController struct {
	DB       *gorm.DB
	Storage  helper.Storage
	Students *achRepo.AchievementStudentRepo
}

func NewAchievementController(db *gorm.DB, st helper.Storage) *AchievementController {
	return &AchievementController{
		DB:       db,
		Storage:  st,
		Students: achRepo.NewAchievementStudentRepo(),
	}
}

var validateAchievement = helper.NewValidator()

/* ===================== Parse & validasi request ===================== */

type uploadBatch struct {
	docs    []*multipart.FileHeader
	charter *multipart.FileHeader
}

// parseRequest membaca body create/update (multipart atau JSON) menjadi DTO
// terketik + batch file, dan menjalankan seluruh validasi field & file.
// Respons TIDAK ditulis di sini: fieldErrs tidak kosong berarti gagal
// validasi (handler membalas 417), err berarti payload rusak (400).
func (h *AchievementController) parseRequest(c *fiber.Ctx) (*achDTO.CreateAchievementRequest, *uploadBatch, map[string][]string, error) {
	var req achDTO.CreateAchievementRequest
	files := &uploadBatch{}
	fieldErrs := map[string][]string{}

	ct := c.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		req.NamaAcara = strings.TrimSpace(c.FormValue("nama_acara"))
		req.Penyelenggara = strings.TrimSpace(c.FormValue("penyelenggara"))
		req.TanggalAcara = strings.TrimSpace(c.FormValue("tanggal_acara"))
		req.IDSiswa = strings.TrimSpace(c.FormValue("id_siswa"))
		req.NISNSiswa = strings.TrimSpace(c.FormValue("nisn_siswa"))

		if v := strings.TrimSpace(c.FormValue("id_juara")); v != "" {
			if n, err := strconv.ParseUint(v, 10, 64); err == nil {
				req.IDJuara = uint(n)
			} else {
				fieldErrs["id_juara"] = append(fieldErrs["id_juara"], "The id_juara field must be a number.")
			}
		}
		if v := strings.TrimSpace(c.FormValue("id_kategori")); v != "" {
			if n, err := strconv.ParseUint(v, 10, 64); err == nil {
				req.IDKategori = uint(n)
			} else {
				fieldErrs["id_kategori"] = append(fieldErrs["id_kategori"], "The id_kategori field must be a number.")
			}
		}

		if form, err := c.MultipartForm(); err == nil && form != nil {
			files.docs = form.File["dokumentasi"]
			if len(files.docs) == 0 {
				files.docs = form.File["dokumentasi[]"]
			}
		}
		if fh, err := c.FormFile("piagam"); err == nil {
			files.charter = fh
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			return nil, nil, nil, fmt.Errorf("payload tidak valid: %w", err)
		}
	}

	if err := validateAchievement.Struct(req); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, nil, nil, err
		}
		for field, msgs := range helper.ValidationMessages(ve) {
			fieldErrs[field] = append(fieldErrs[field], msgs...)
		}
	}

	if req.TanggalAcara != "" {
		if err := achDTO.ValidateEventDate(req.TanggalAcara); err != nil {
			fieldErrs["tanggal_acara"] = append(fieldErrs["tanggal_acara"], err.Error())
		}
	}

	// Konstrain file: dokumentasi harus gambar, piagam png/jpg/jpeg/pdf.
	for _, fh := range files.docs {
		if err := helper.ValidateImage(fh); err != nil {
			fieldErrs["dokumentasi"] = append(fieldErrs["dokumentasi"], "The dokumentasi field must be an image.")
			break
		}
	}
	if files.charter != nil && !helper.IsAllowedCharter(files.charter.Filename) {
		fieldErrs["piagam"] = append(fieldErrs["piagam"], "The piagam field must be a file of type: png, jpg, jpeg, pdf.")
	}

	if len(fieldErrs) > 0 {
		return nil, nil, fieldErrs, nil
	}
	return &req, files, nil, nil
}

var (
	errRankNotFound     = errors.New("kategori juara tidak ada")
	errCategoryNotFound = errors.New("kategori lomba tidak ada")
)

// resolveRefs memastikan id_juara & id_kategori menunjuk data referensi yang
// ada, sebelum ada efek samping apa pun. Tidak menulis respons; handler
// menerjemahkan lewat writeRefError.
func (h *AchievementController) resolveRefs(ctx context.Context, req *achDTO.CreateAchievementRequest) (*achModel.AchievementRankModel, *achModel.AchievementCategoryModel, error) {
	var rank achModel.AchievementRankModel
	if err := h.DB.WithContext(ctx).First(&rank, req.IDJuara).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errRankNotFound
		}
		return nil, nil, err
	}

	var category achModel.AchievementCategoryModel
	if err := h.DB.WithContext(ctx).First(&category, req.IDKategori).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errCategoryNotFound
		}
		return nil, nil, err
	}
	return &rank, &category, nil
}

// writeRefError memetakan kegagalan resolveRefs ke respons kontrak lama
// (kode 4041/4042 untuk referensi yang tidak ada).
func writeRefError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errRankNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"messages": "kategori juara tidak ada", "kode": "4041",
		})
	case errors.Is(err, errCategoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"messages": "kategori lomba tidak ada", "kode": "4042",
		})
	}
	return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa referensi")
}

// saveUploads menyimpan batch dokumentasi + piagam dengan nama deterministik.
// Mengembalikan nama-nama yang tersimpan supaya bisa dikompensasi saat batal.
func (h *AchievementController) saveUploads(req *achDTO.CreateAchievementRequest, files *uploadBatch) (docNames []string, charterName string, err error) {
	for i, fh := range files.docs {
		name := achDTO.DocumentationFilename(
			req.NamaAcara, req.Penyelenggara, req.TanggalAcara, i, helper.FileExt(fh.Filename))
		if err := h.Storage.Save(fh, helper.BucketAchievementDocumentation, name); err != nil {
			h.removeUploads(docNames, "")
			return nil, "", err
		}
		docNames = append(docNames, name)
	}
	if files.charter != nil {
		charterName = achDTO.CharterFilename(
			req.NamaAcara, req.Penyelenggara, req.TanggalAcara, helper.FileExt(files.charter.Filename))
		if err := h.Storage.Save(files.charter, helper.BucketAchievementCharter, charterName); err != nil {
			h.removeUploads(docNames, "")
			return nil, "", err
		}
	}
	return docNames, charterName, nil
}

func (h *AchievementController) removeUploads(docNames []string, charterName string) {
	for _, name := range docNames {
		if err := h.Storage.Remove(helper.BucketAchievementDocumentation, name); err != nil {
			log.Printf("[WARN] gagal menghapus dokumentasi %s: %v", name, err)
		}
	}
	if charterName != "" {
		if err := h.Storage.Remove(helper.BucketAchievementCharter, charterName); err != nil {
			log.Printf("[WARN] gagal menghapus piagam %s: %v", charterName, err)
		}
	}
}

// linkStudents me-resolve CSV id_siswa / nisn_siswa dan menambahkan baris
// relasi di dalam tx. Siswa yang tak ketemu → ErrStudentNotFound.
func (h *AchievementController) linkStudents(c *fiber.Ctx, tx *gorm.DB, achievementID uint, req *achDTO.CreateAchievementRequest) error {
	if req.IDSiswa != "" {
		students, err := h.Students.ResolveByIDs(c.UserContext(), tx, req.IDSiswa)
		if err != nil {
			return err
		}
		for _, s := range students {
			if err := h.Students.Link(tx, achievementID, s.ID); err != nil {
				return err
			}
		}
	}
	if req.NISNSiswa != "" {
		students, err := h.Students.ResolveByNISN(c.UserContext(), tx, req.NISNSiswa)
		if err != nil {
			return err
		}
		for _, s := range students {
			if err := h.Students.Link(tx, achievementID, s.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func preloadRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Students", func(q *gorm.DB) *gorm.DB {
			return q.Select("students.id", "students.full_name", "students.nisn")
		}).
		Preload("AchievementRank").
		Preload("AchievementCategory")
}

/* ===================== LIST =====================
   GET /api/achievements */

func (h *AchievementController) Index(c *fiber.Ctx) error {
	var records []achModel.AchievementModel
	if err := preloadRelations(h.DB.WithContext(c.UserContext())).
		Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]*achDTO.AchievementResource, 0, len(records))
	for i := range records {
		out = append(out, achDTO.NewAchievementResource(&records[i]))
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": out})
}

/* ===================== CREATE =====================
   POST /api/achievements (auth) */

func (h *AchievementController) Store(c *fiber.Ctx) error {
	req, files, fieldErrs, err := h.parseRequest(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusExpectationFailed).JSON(fieldErrs)
	}

	rank, category, err := h.resolveRefs(c.UserContext(), req)
	if err != nil {
		return writeRefError(c, err)
	}

	// File disimpan sebelum tx DB; bila tx batal, file yang sudah tertulis
	// dihapus lagi (kompensasi di sisi filesystem).
	docNames, charterName, err := h.saveUploads(req, files)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan file upload")
	}

	m := req.ToModel()
	m.AchievementDocumentations = strings.Join(docNames, ",")
	if charterName != "" {
		m.AchievementCharter = &charterName
	}

	tx := h.DB.WithContext(c.UserContext()).Begin()
	if tx.Error != nil {
		h.removeUploads(docNames, charterName)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			h.removeUploads(docNames, charterName)
			panic(r)
		}
	}()

	base := achDTO.AchievementSlug(req.NamaAcara, req.TanggalAcara, rank.Rank)
	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), tx, "achievements", "slug", base, nil, 200)
	if err != nil {
		tx.Rollback()
		h.removeUploads(docNames, charterName)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	m.Slug = slug

	if err := tx.Create(m).Error; err != nil {
		tx.Rollback()
		h.removeUploads(docNames, charterName)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan prestasi")
	}

	// Relasi siswa all-or-nothing: satu identitas gagal resolve → seluruh
	// create dibatalkan (record ikut hilang bersama rollback, tanpa
	// compensating delete manual).
	if err := h.linkStudents(c, tx, m.ID, req); err != nil {
		tx.Rollback()
		h.removeUploads(docNames, charterName)
		if errors.Is(err, achRepo.ErrStudentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"messages": "Salah satu siswa yang dipilih tidak ditemukan",
			})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghubungkan siswa")
	}

	if err := tx.Commit().Error; err != nil {
		h.removeUploads(docNames, charterName)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan prestasi")
	}

	return c.Status(fiber.StatusOK).
		JSON(achDTO.MutationEnvelope("Prestasi baru berhasil ditambahkan", m, rank.Rank, category.Category))
}

/* ===================== SHOW =====================
   GET /api/achievements/:idOrSlug (id numerik atau slug) */

func (h *AchievementController) Show(c *fiber.Ctx) error {
	attr := c.Params("idOrSlug")

	q := preloadRelations(h.DB.WithContext(c.UserContext()))

	var m achModel.AchievementModel
	var err error
	if id, convErr := strconv.ParseUint(attr, 10, 64); convErr == nil {
		err = q.First(&m, uint(id)).Error
	} else {
		err = q.Where("slug = ?", attr).First(&m).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"messages": "Data tidak ditemukan"})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": achDTO.NewAchievementResource(&m)})
}

/* ===================== UPDATE =====================
   PUT|PATCH /api/achievements/:id (auth) */

func (h *AchievementController) Update(c *fiber.Ctx) error {
	id, convErr := strconv.ParseUint(c.Params("id"), 10, 64)
	if convErr != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"messages": "Data tidak ditemukan"})
	}

	// Check-then-use: record harus ada sebelum validasi file menyentuh disk.
	var existing achModel.AchievementModel
	if err := h.DB.WithContext(c.UserContext()).First(&existing, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"messages": "Data tidak ditemukan"})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req, files, fieldErrs, err := h.parseRequest(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusExpectationFailed).JSON(fieldErrs)
	}

	rank, category, err := h.resolveRefs(c.UserContext(), req)
	if err != nil {
		return writeRefError(c, err)
	}

	docNames, charterName, err := h.saveUploads(req, files)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan file upload")
	}

	// Dokumentasi & piagam di-overwrite, tidak digabung; slug TIDAK
	// diregenerasi saat update.
	updates := map[string]interface{}{
		"event_name":                 strings.TrimSpace(req.NamaAcara),
		"organizer":                  strings.TrimSpace(req.Penyelenggara),
		"event_date":                 strings.TrimSpace(req.TanggalAcara),
		"achievement_documentations": strings.Join(docNames, ","),
		"achievement_rank_id":        req.IDJuara,
		"achievement_category_id":    req.IDKategori,
	}
	if charterName != "" {
		updates["achievement_charter"] = charterName
	} else {
		updates["achievement_charter"] = nil
	}

	tx := h.DB.WithContext(c.UserContext()).Begin()
	if tx.Error != nil {
		h.removeUploads(docNames, charterName)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			h.removeUploads(docNames, charterName)
			panic(r)
		}
	}()

	if err := tx.Model(&achModel.AchievementModel{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error; err != nil {
		tx.Rollback()
		h.removeUploads(docNames, charterName)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah prestasi")
	}

	// Sama seperti create: relasi siswa all-or-nothing. Record lama tetap
	// utuh karena perubahan ikut rollback.
	if err := h.linkStudents(c, tx, existing.ID, req); err != nil {
		tx.Rollback()
		h.removeUploads(docNames, charterName)
		if errors.Is(err, achRepo.ErrStudentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"messages": "Salah satu siswa yang dipilih tidak ditemukan",
			})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghubungkan siswa")
	}

	if err := tx.Commit().Error; err != nil {
		h.removeUploads(docNames, charterName)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah prestasi")
	}

	updated := *req.ToModel()
	updated.ID = existing.ID
	updated.Slug = existing.Slug
	updated.AchievementDocumentations = strings.Join(docNames, ",")
	if charterName != "" {
		updated.AchievementCharter = &charterName
	}

	return c.Status(fiber.StatusOK).
		JSON(achDTO.MutationEnvelope("Prestasi berhasil diubah", &updated, rank.Rank, category.Category))
}

/* ===================== DELETE =====================
   DELETE /api/achievements/:id (auth) */

func (h *AchievementController) Destroy(c *fiber.Ctx) error {
	id, convErr := strconv.ParseUint(c.Params("id"), 10, 64)
	if convErr != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"messages": "Data tidak ditemukan"})
	}

	var m achModel.AchievementModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"messages": "Data tidak ditemukan"})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	tx := h.DB.WithContext(c.UserContext()).Begin()
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Baris relasi ikut terhapus dalam tx yang sama (cascade aplikasi).
	if err := h.Students.UnlinkAll(tx, m.ID); err != nil {
		tx.Rollback()
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus relasi siswa")
	}
	if err := tx.Delete(&m).Error; err != nil {
		tx.Rollback()
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus prestasi")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus prestasi")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"messages": "Data berhasil dihapus"})
}

/* ===================== META =====================
   GET /api/achievements/meta */

func (h *AchievementController) Meta(c *fiber.Ctx) error {
	var ranks []achModel.AchievementRankModel
	if err := h.DB.WithContext(c.UserContext()).Order("id").Find(&ranks).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	var categories []achModel.AchievementCategoryModel
	if err := h.DB.WithContext(c.UserContext()).Order("id").Find(&categories).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"juara":    ranks,
		"kategori": categories,
	})
}

/* ===================== COUNT =====================
   GET /api/achievements/count */

func (h *AchievementController) Count(c *fiber.Ctx) error {
	var total int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&achModel.AchievementModel{}).
		Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// Selalu dihitung ulang dari keadaan relasi sekarang, bukan dari cache.
	var details []achDTO.CategoryCount
	if err := h.DB.WithContext(c.UserContext()).
		Table("achievement_categories AS ac").
		Select("ac.category AS kategori, COUNT(a.id) AS total").
		Joins("LEFT JOIN achievements a ON a.achievement_category_id = ac.id").
		Group("ac.id, ac.category").
		Order("ac.id").
		Scan(&details).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if details == nil {
		details = []achDTO.CategoryCount{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"kode":   "200",
		"pesan":  "Data berhasil didapatkan",
		"data": achDTO.AchievementCountData{
			JumlahPrestasi: total,
			DetailJumlah:   details,
		},
	})
}
