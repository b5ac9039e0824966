package service

import (
	"testing"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer_DuplicateEmailIsConflict(t *testing.T) {
	db := newTestDB(t)
	seedCustomer(t, db, "ana@example.com")
	svc := NewCustomerService(repository.NewCustomerRepository(db))

	_, err := svc.Create(ctxBg(), dto.CreateCustomerRequest{
		FirstName: "Ana", LastName: "Diaz", Email: "ana@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.AsError(err).Kind)
}

func TestUpdateCustomer_PartialUpdate(t *testing.T) {
	db := newTestDB(t)
	c := seedCustomer(t, db, "ana@example.com")
	svc := NewCustomerService(repository.NewCustomerRepository(db))

	updated, err := svc.Update(ctxBg(), c.ID, dto.UpdateCustomerRequest{
		Phone: strPtr("+58 212 555 0100"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+58 212 555 0100", *updated.Phone)
	assert.Equal(t, "ana@example.com", updated.Email)
	assert.Equal(t, "Ana", updated.FirstName)
}

func TestUpdateCustomer_MissingIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(repository.NewCustomerRepository(db))

	_, err := svc.Update(ctxBg(), 31337, dto.UpdateCustomerRequest{Phone: strPtr("5550100")})
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.AsError(err).Kind)
}

func TestDeleteCustomer(t *testing.T) {
	db := newTestDB(t)
	c := seedCustomer(t, db, "ana@example.com")
	svc := NewCustomerService(repository.NewCustomerRepository(db))

	require.NoError(t, svc.Delete(ctxBg(), c.ID))
	err := svc.Delete(ctxBg(), c.ID)
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.AsError(err).Kind)
}
