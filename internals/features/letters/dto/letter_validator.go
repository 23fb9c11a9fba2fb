// internals/features/letters/dto/letter_validator.go
package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	helper "suratku_backend/internals/helpers"
)

// NewLetterValidator membuat instance validator untuk seluruh request surat.
// Path error memakai nama tag json supaya cocok dengan payload klien, dan
// aturan tanggal Indonesia didaftarkan sebagai tag kustom sehingga kegagalan
// parse tanggal terkumpul bersama error validasi lain dalam satu response.
func NewLetterValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// tanggal_indonesia: "1 Juli 2024" dan harus tanggal kalender yang sah.
	_ = v.RegisterValidation("tanggal_indonesia", func(fl validator.FieldLevel) bool {
		_, err := helper.ParseTanggalIndonesia(fl.Field().String())
		return err == nil
	})

	// tempat_tanggal: "Malang, 12 Januari 2026". Bagian setelah koma
	// terakhir harus tanggal Indonesia yang sah.
	_ = v.RegisterValidation("tempat_tanggal", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		i := strings.LastIndex(s, ",")
		if i < 0 || strings.TrimSpace(s[:i]) == "" {
			return false
		}
		_, err := helper.ParseTanggalIndonesia(s[i+1:])
		return err == nil
	})

	return v
}
