package helper

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidationMessagesUsesWireFieldNames(t *testing.T) {
	type payload struct {
		NamaAcara string `json:"nama_acara" validate:"required"`
		IDJuara   uint   `json:"id_juara" validate:"required"`
	}

	v := NewValidator()
	err := v.Struct(payload{})
	if err == nil {
		t.Fatal("struct kosong harus gagal validasi")
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("tipe error = %T", err)
	}

	msgs := ValidationMessages(ve)
	for _, field := range []string{"nama_acara", "id_juara"} {
		got, ok := msgs[field]
		if !ok {
			t.Fatalf("field %q tidak ada di peta pesan: %v", field, msgs)
		}
		want := "The " + field + " field is required."
		if len(got) != 1 || got[0] != want {
			t.Fatalf("pesan %q = %v, want [%q]", field, got, want)
		}
	}
}
