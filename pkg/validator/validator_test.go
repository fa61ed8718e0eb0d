package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ReferenceNumber string    `validate:"required"`
	ProductID       uuid.UUID `validate:"uuid_required"`
	Quantity        int       `validate:"required,gte=1"`
}

func TestValidateStructCollectsFailures(t *testing.T) {
	errs := ValidateStruct(&sample{})
	require.Len(t, errs, 3)
}

func TestValidateStructPasses(t *testing.T) {
	errs := ValidateStruct(&sample{
		ReferenceNumber: "SI-001",
		ProductID:       uuid.New(),
		Quantity:        3,
	})
	assert.Empty(t, errs)
}

func TestErrorMapSnakeCasesFields(t *testing.T) {
	errs := ValidateStruct(&sample{Quantity: 1, ProductID: uuid.New()})
	m := ErrorMap(errs)

	require.Len(t, m, 1)
	assert.Contains(t, m, "reference_number")
	assert.Equal(t, "failed on 'required'", m["reference_number"])
}

func TestErrorMapIncludesParam(t *testing.T) {
	errs := ValidateStruct(&sample{ReferenceNumber: "SI-001", ProductID: uuid.New(), Quantity: -1})
	m := ErrorMap(errs)

	require.Contains(t, m, "quantity")
	assert.Equal(t, "failed on 'gte=1'", m["quantity"])
}

func TestUUIDRequiredRejectsNil(t *testing.T) {
	errs := ValidateStruct(&sample{ReferenceNumber: "SI-001", Quantity: 1})
	m := ErrorMap(errs)
	assert.Contains(t, m, "product_id")
}
