package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Success Response tanpa custom code (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Error Response sederhana
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Error Response advance (opsional), bisa kirim multiple field error
func ErrorWithDetails(c *fiber.Ctx, code int, message string, errs interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errs,
	})
}

// FieldError adalah satu entri kegagalan validasi pada response 400.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ✅ Khusus error validasi (validator.v10): semua kegagalan dikumpulkan,
// bukan hanya yang pertama.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Error(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", FieldErrorsFromValidator(ve))
}

// FieldErrorsFromValidator mengubah validator.ValidationErrors menjadi daftar
// FieldError berurutan. Field memakai path json lengkap tanpa nama struct
// root, termasuk indeks slice (contoh "assignees[0].nama").
func FieldErrorsFromValidator(ve validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{
			Field:   trimRootNamespace(fe.Namespace()),
			Message: pesanValidasi(fe),
		})
	}
	return out
}

func trimRootNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func pesanValidasi(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "min":
		return fmt.Sprintf("minimal %s", fe.Param())
	case "max":
		return fmt.Sprintf("maksimal %s", fe.Param())
	case "url":
		return "harus berupa URL yang valid"
	case "oneof":
		return fmt.Sprintf("harus salah satu dari: %s", fe.Param())
	case "tanggal_indonesia":
		return "harus berformat tanggal Indonesia, contoh: 1 Juli 2024"
	case "tempat_tanggal":
		return "harus berformat \"Tempat, tanggal Indonesia\", contoh: Malang, 12 Januari 2026"
	default:
		return fmt.Sprintf("gagal pada aturan %s", fe.Tag())
	}
}
