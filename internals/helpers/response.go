package helper

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validate dipakai bersama; nama field di pesan error mengikuti tag json.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// FieldErrors: error validasi per field yang bisa dikembalikan dari service.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(fe[k], "; "))
	}
	return strings.Join(parts, ", ")
}

// ErrOrNil: nil kalau tidak ada error (hindari interface non-nil berisi map kosong).
func (fe FieldErrors) ErrOrNil() error {
	if fe.Empty() {
		return nil
	}
	return fe
}

// ValidateStruct menjalankan validator dan mengubah hasilnya jadi FieldErrors.
func ValidateStruct(s any) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	out := FieldErrors{}
	for _, fe := range ve {
		out.Add(fe.Field(), fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "max":
		return fmt.Sprintf("maksimal %s karakter", fe.Param())
	case "min":
		return fmt.Sprintf("minimal %s", fe.Param())
	case "gte":
		return fmt.Sprintf("harus >= %s", fe.Param())
	case "oneof":
		return "harus salah satu dari: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "tidak valid (" + fe.Tag() + ")"
	}
}
