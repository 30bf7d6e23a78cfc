package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bayu-x3/Washify-Backend/dtos"
)

func validTransaksiInput() dtos.TransaksiInput {
	return dtos.TransaksiInput{
		IDOutlet:    1,
		KodeInvoice: "INV001",
		IDMember:    1,
		Tgl:         time.Now(),
		BatasWaktu:  time.Now().AddDate(0, 0, 3),
		Diskon:      0,
		Status:      "baru",
		Dibayar:     "belum_dibayar",
		IDUser:      1,
	}
}

func TestValidateDiskonBounds(t *testing.T) {
	input := validTransaksiInput()

	input.Diskon = 0
	assert.Nil(t, Validate(input))

	input.Diskon = 100
	assert.Nil(t, Validate(input))

	input.Diskon = 150
	errs := Validate(input)
	require.Len(t, errs, 1)
	assert.Equal(t, "diskon", errs[0].Field)
}

func TestValidateReportsEveryViolation(t *testing.T) {
	input := dtos.TransaksiInput{
		Diskon: 150,
		Status: "unknown",
	}

	errs := Validate(input)
	require.NotEmpty(t, errs)

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}

	// not fail-fast: every broken field shows up at once
	assert.True(t, fields["id_outlet"])
	assert.True(t, fields["kode_invoice"])
	assert.True(t, fields["diskon"])
	assert.True(t, fields["status"])
	assert.True(t, fields["id_user"])
}

func TestValidateFieldNamesAreJSONNames(t *testing.T) {
	input := dtos.MemberInput{
		Nama:         "ab",
		Alamat:       "Jl. Raya 1",
		JenisKelamin: "other",
		Tlp:          1234,
	}

	errs := Validate(input)
	require.Len(t, errs, 2)

	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "nama")
	assert.Contains(t, fields, "jenis_kelamin")
}

func TestValidatePartialSkipsOmittedFields(t *testing.T) {
	// no fields supplied means nothing to validate
	assert.Nil(t, Validate(dtos.TransaksiUpdateInput{}))

	bad := 150.0
	errs := Validate(dtos.TransaksiUpdateInput{Diskon: &bad})
	require.Len(t, errs, 1)
	assert.Equal(t, "diskon", errs[0].Field)
}
