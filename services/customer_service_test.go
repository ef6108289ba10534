package services

import (
	"testing"

	"github.com/acastell/restobook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	_, err := svc.Create(CreateCustomerInput{FullName: "Maria Lopez", Email: "maria@example.com", Phone: "612345678"})
	require.NoError(t, err)

	_, err = svc.Create(CreateCustomerInput{FullName: "Other Maria", Email: "maria@example.com", Phone: "698765432"})
	require.ErrorIs(t, err, models.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "maria@example.com")
}

func TestSearchCustomers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	_, err := svc.Create(CreateCustomerInput{FullName: "Maria Lopez", Email: "maria@example.com", Phone: "612345678"})
	require.NoError(t, err)
	_, err = svc.Create(CreateCustomerInput{FullName: "Juan Garcia", Email: "juan@example.com", Phone: "698765432"})
	require.NoError(t, err)

	// name, case-insensitive
	found, err := svc.Search("MARIA")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Maria Lopez", found[0].FullName)

	// email fragment
	found, err = svc.Search("juan@")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Juan Garcia", found[0].FullName)

	// phone fragment
	found, err = svc.Search("61234")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Maria Lopez", found[0].FullName)

	found, err = svc.Search("nothing-like-this")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestUpdateCustomerPartial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	customer, err := svc.Create(CreateCustomerInput{FullName: "Maria Lopez", Email: "maria@example.com", Phone: "612345678"})
	require.NoError(t, err)
	_, err = svc.Create(CreateCustomerInput{FullName: "Juan Garcia", Email: "juan@example.com", Phone: "698765432"})
	require.NoError(t, err)

	phone := "600000000"
	updated, err := svc.Update(customer.ID, models.CustomerPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "600000000", updated.Phone)
	assert.Equal(t, "Maria Lopez", updated.FullName)
	assert.Equal(t, "maria@example.com", updated.Email)

	taken := "juan@example.com"
	_, err = svc.Update(customer.ID, models.CustomerPatch{Email: &taken})
	assert.ErrorIs(t, err, models.ErrDuplicateKey)

	_, err = svc.Update(999, models.CustomerPatch{Phone: &phone})
	assert.ErrorIs(t, err, models.ErrCustomerNotFound)
}

func TestDeleteCustomerGuard(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig(t, "13:00-23:00")
	customerSvc := NewCustomerService(db)
	resSvc := NewReservationService(db, cfg)

	customer := seedCustomer(t, db, "maria@example.com")
	table := seedTable(t, db, 1, 4, true)

	reservation, err := resSvc.Create(CreateReservationInput{
		CustomerID: customer.ID, TableID: table.ID, PartySize: 2, StartTime: seatingAt(14, 0),
	})
	require.NoError(t, err)

	// pending reservation blocks the delete
	err = customerSvc.Delete(customer.ID)
	assert.ErrorIs(t, err, models.ErrHasActiveReservations)

	// a cancelled one does not
	_, err = resSvc.Cancel(reservation.ID)
	require.NoError(t, err)
	assert.NoError(t, customerSvc.Delete(customer.ID))

	assert.ErrorIs(t, customerSvc.Delete(customer.ID), models.ErrCustomerNotFound)
}
