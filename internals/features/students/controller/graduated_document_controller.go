package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	stuDTO "sekolahku_backend/internals/features/students/dto"
	stuModel "sekolahku_backend/internals/features/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type GraduatedDocumentController struct {
	DB      *gorm.DB
	Storage helper.Storage
}

func NewGraduatedDocumentController(db *gorm.DB, st helper.Storage) *GraduatedDocumentController {
	return &GraduatedDocumentController{DB: db, Storage: st}
}

// ===================== LIST =====================
// GET /api/students/graduated
func (h *GraduatedDocumentController) Index(c *fiber.Ctx) error {
	var students []stuModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		Joins("JOIN graduated_documents ON graduated_documents.student_id = students.id").
		Preload("AcademicYear").
		Preload("GraduatedDocument").
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]*stuDTO.GraduatedDocumentResource, 0, len(students))
	for i := range students {
		out = append(out, stuDTO.NewGraduatedDocumentResource(&students[i], h.Storage))
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": out})
}

// ===================== SHOW =====================
// GET /api/students/graduated/:nisn
func (h *GraduatedDocumentController) Show(c *fiber.Ctx) error {
	nisn := c.Params("nisn")

	var student stuModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("AcademicYear").
		Preload("GraduatedDocument").
		Where("nisn = ?", nisn).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"messages": "Data tidak ditemukan"})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if student.GraduatedDocument == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"messages": "Data tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": stuDTO.NewGraduatedDocumentResource(&student, h.Storage),
	})
}
