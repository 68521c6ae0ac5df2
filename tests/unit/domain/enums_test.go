package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropai/internal/domain"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, domain.RoleFarmer.Valid())
	assert.True(t, domain.RoleTechnician.Valid())
	assert.True(t, domain.RoleSupplier.Valid())
	assert.False(t, domain.Role("landlord").Valid())
	assert.False(t, domain.Role("").Valid())
}

func TestRole_CanAccess(t *testing.T) {
	assert.True(t, domain.RoleFarmer.CanAccess(domain.RecordKindSale))
	assert.True(t, domain.RoleFarmer.CanAccess(domain.RecordKindInvoice))

	assert.True(t, domain.RoleSupplier.CanAccess(domain.RecordKindSale))
	assert.False(t, domain.RoleSupplier.CanAccess(domain.RecordKindInvoice))

	assert.True(t, domain.RoleTechnician.CanAccess(domain.RecordKindInvoice))
	assert.False(t, domain.RoleTechnician.CanAccess(domain.RecordKindSale))
}

func TestParseRecordKind(t *testing.T) {
	for _, s := range []string{"sale", "sales"} {
		kind, err := domain.ParseRecordKind(s)
		require.NoError(t, err)
		assert.Equal(t, domain.RecordKindSale, kind)
	}
	for _, s := range []string{"invoice", "invoices"} {
		kind, err := domain.ParseRecordKind(s)
		require.NoError(t, err)
		assert.Equal(t, domain.RecordKindInvoice, kind)
	}

	_, err := domain.ParseRecordKind("receipts")
	assert.ErrorIs(t, err, domain.ErrInvalidRecordKind)
}

func TestFarmProfile_Validate(t *testing.T) {
	valid := domain.FarmProfile{
		Role:   domain.RoleFarmer,
		Farmer: &domain.FarmerDetails{Crops: []string{"maize"}},
	}
	assert.NoError(t, valid.Validate())

	missingVariant := domain.FarmProfile{Role: domain.RoleFarmer}
	assert.ErrorIs(t, missingVariant.Validate(), domain.ErrInvalidProfile)

	twoVariants := domain.FarmProfile{
		Role:     domain.RoleFarmer,
		Farmer:   &domain.FarmerDetails{},
		Supplier: &domain.SupplierDetails{},
	}
	assert.ErrorIs(t, twoVariants.Validate(), domain.ErrInvalidProfile)

	wrongVariant := domain.FarmProfile{
		Role:     domain.RoleTechnician,
		Supplier: &domain.SupplierDetails{},
	}
	assert.ErrorIs(t, wrongVariant.Validate(), domain.ErrInvalidProfile)

	badRole := domain.FarmProfile{Role: domain.Role("landlord")}
	assert.ErrorIs(t, badRole.Validate(), domain.ErrInvalidRole)
}
