package relief

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/model"
)

// supplyFixture creates a shelter, a pending request and returns both.
func supplyFixture(t *testing.T, svc *Service, ctx context.Context) (*model.Shelter, *model.ReliefRequest) {
	shelter, err := svc.CreateShelter(ctx, validShelterInput("USR-manager"))
	require.NoError(t, err)

	request, err := svc.CreateReliefRequest(ctx, RequestInput{
		ShelterID:   shelter.ID,
		RequesterID: "USR-manager",
		Priority:    model.PriorityUrgent,
		Items:       []ItemInput{waterItem(), blanketItem()},
	})
	require.NoError(t, err)
	return shelter, request
}

func validSupplyInput(requestID string) SupplyInput {
	return SupplyInput{
		RequestID:        requestID,
		SupplierID:       "USR-donor",
		SupplierName:     "박영희",
		SupplierPhone:    "010-1234-5678",
		SupplierEmail:    "donor@example.com",
		SuppliedQuantity: 50,
		Message:          "도움이 되길 바랍니다.",
	}
}

func TestAddSupply(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	shelter, request := supplyFixture(t, svc, ctx)

	t.Run("snapshots the representative item", func(t *testing.T) {
		supply, err := svc.AddSupply(ctx, validSupplyInput(request.ID))
		require.NoError(t, err)

		assert.Regexp(t, `^SUP-`, supply.ID)
		assert.Equal(t, model.SupplyPending, supply.Status)
		assert.Equal(t, shelter.ID, supply.ShelterID)
		assert.Equal(t, model.PriorityUrgent, supply.Priority)

		// Snapshot of the request's first line item
		assert.Equal(t, "생수", supply.ItemName)
		assert.Equal(t, "식량", supply.Category)
		assert.Equal(t, "음료", supply.Subcategory)
		assert.Equal(t, 100, supply.RequestedQuantity)
		assert.Equal(t, "병", supply.Unit)
		assert.Equal(t, 50, supply.SuppliedQuantity)
	})

	t.Run("snapshot survives later request changes", func(t *testing.T) {
		supply, err := svc.AddSupply(ctx, validSupplyInput(request.ID))
		require.NoError(t, err)

		_, err = svc.UpdateRequestStatus(ctx, "USR-manager", request.ID, model.RequestInProgress, "상황 변경")
		require.NoError(t, err)

		stored, err := st.GetSupply(ctx, supply.ID)
		require.NoError(t, err)
		assert.Equal(t, "생수", stored.ItemName)
		assert.Equal(t, 100, stored.RequestedQuantity)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		in := validSupplyInput(request.ID)
		in.SupplierName = ""
		_, err := svc.AddSupply(ctx, in)
		assert.Equal(t, "supply-missing-fields", apperr.CodeOf(err))
	})

	t.Run("rejects malformed phone", func(t *testing.T) {
		in := validSupplyInput(request.ID)
		in.SupplierPhone = "no-phone"
		_, err := svc.AddSupply(ctx, in)
		assert.Equal(t, "supply-invalid-phone", apperr.CodeOf(err))
	})

	t.Run("rejects malformed email when present", func(t *testing.T) {
		in := validSupplyInput(request.ID)
		in.SupplierEmail = "not-an-email"
		_, err := svc.AddSupply(ctx, in)
		assert.Equal(t, "supply-invalid-email", apperr.CodeOf(err))
	})

	t.Run("rejects unknown request", func(t *testing.T) {
		_, err := svc.AddSupply(ctx, validSupplyInput("REQ-missing"))
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestAddSupplySimple(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	shelter, request := supplyFixture(t, svc, ctx)

	t.Run("falls back to the request's shelter and priority", func(t *testing.T) {
		supply, err := svc.AddSupplySimple(ctx, request.ID, "USR-donor", SimpleSupplyInput{
			ItemName: "생수",
			Category: "식량",
			Quantity: 20,
			Unit:     "병",
		})
		require.NoError(t, err)
		assert.Equal(t, shelter.ID, supply.ShelterID)
		assert.Equal(t, model.PriorityUrgent, supply.Priority)
		assert.Equal(t, 20, supply.SuppliedQuantity)
		assert.Empty(t, supply.SupplierPhone)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := svc.AddSupplySimple(ctx, request.ID, "USR-donor", SimpleSupplyInput{
			ItemName: "생수",
			Quantity: 0,
			Unit:     "병",
		})
		assert.Equal(t, "supply-invalid-quantity", apperr.CodeOf(err))
	})
}

func TestRegisterTracking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, request := supplyFixture(t, svc, ctx)

	supply, err := svc.AddSupply(ctx, validSupplyInput(request.ID))
	require.NoError(t, err)

	t.Run("rejects blank courier fields", func(t *testing.T) {
		_, err := svc.RegisterTracking(ctx, "USR-donor", supply.ID, "  ", "1234567890")
		assert.Equal(t, "tracking-missing-fields", apperr.CodeOf(err))

		_, err = svc.RegisterTracking(ctx, "USR-donor", supply.ID, "CJ대한통운", "")
		assert.Equal(t, "tracking-missing-fields", apperr.CodeOf(err))
	})

	t.Run("rejects anyone but the supplier", func(t *testing.T) {
		_, err := svc.RegisterTracking(ctx, "USR-manager", supply.ID, "CJ대한통운", "1234567890")
		assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	})

	t.Run("marks the supply shipped", func(t *testing.T) {
		updated, err := svc.RegisterTracking(ctx, "USR-donor", supply.ID, "CJ대한통운", "1234567890")
		require.NoError(t, err)
		assert.Equal(t, model.SupplyShipped, updated.Status)
		assert.Equal(t, "CJ대한통운", updated.CourierCompany)
		assert.Equal(t, "1234567890", updated.TrackingNumber)
		require.NotNil(t, updated.ShippedAt)
	})

	t.Run("shipped supply cannot be shipped again", func(t *testing.T) {
		_, err := svc.RegisterTracking(ctx, "USR-donor", supply.ID, "CJ대한통운", "1234567890")
		assert.Equal(t, "supply-invalid-status", apperr.CodeOf(err))
	})
}

func TestUpdateSupplyStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, request := supplyFixture(t, svc, ctx)

	t.Run("manager confirms and acknowledges delivery", func(t *testing.T) {
		supply, err := svc.AddSupply(ctx, validSupplyInput(request.ID))
		require.NoError(t, err)

		confirmed, err := svc.UpdateSupplyStatus(ctx, "USR-manager", supply.ID, model.SupplyConfirmed)
		require.NoError(t, err)
		assert.Equal(t, model.SupplyConfirmed, confirmed.Status)

		_, err = svc.RegisterTracking(ctx, "USR-donor", supply.ID, "한진택배", "9876543210")
		require.NoError(t, err)

		delivered, err := svc.UpdateSupplyStatus(ctx, "USR-manager", supply.ID, model.SupplyDelivered)
		require.NoError(t, err)
		assert.Equal(t, model.SupplyDelivered, delivered.Status)
	})

	t.Run("donor may not confirm", func(t *testing.T) {
		supply, err := svc.AddSupply(ctx, validSupplyInput(request.ID))
		require.NoError(t, err)

		_, err = svc.UpdateSupplyStatus(ctx, "USR-donor", supply.ID, model.SupplyConfirmed)
		assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	})

	t.Run("shipping requires courier info on record", func(t *testing.T) {
		supply, err := svc.AddSupply(ctx, validSupplyInput(request.ID))
		require.NoError(t, err)

		_, err = svc.UpdateSupplyStatus(ctx, "USR-manager", supply.ID, model.SupplyShipped)
		assert.Equal(t, "tracking-missing-fields", apperr.CodeOf(err))
	})

	t.Run("donor cancels own pledge", func(t *testing.T) {
		supply, err := svc.AddSupply(ctx, validSupplyInput(request.ID))
		require.NoError(t, err)

		cancelled, err := svc.CancelSupply(ctx, "USR-donor", supply.ID)
		require.NoError(t, err)
		assert.Equal(t, model.SupplyCancelled, cancelled.Status)

		// cancelled is terminal
		_, err = svc.UpdateSupplyStatus(ctx, "USR-manager", supply.ID, model.SupplyConfirmed)
		assert.Equal(t, "supply-invalid-status", apperr.CodeOf(err))
	})

	t.Run("manager may not cancel a donor's pledge", func(t *testing.T) {
		supply, err := svc.AddSupply(ctx, validSupplyInput(request.ID))
		require.NoError(t, err)

		_, err = svc.CancelSupply(ctx, "USR-manager", supply.ID)
		assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	})
}

func TestListSupplies(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	shelter, request := supplyFixture(t, svc, ctx)

	_, err := svc.AddSupply(ctx, validSupplyInput(request.ID))
	require.NoError(t, err)
	_, err = svc.AddSupply(ctx, validSupplyInput(request.ID))
	require.NoError(t, err)

	t.Run("annotates a donor's supplies with their shelters", func(t *testing.T) {
		supplies, err := svc.ListSuppliesByUser(ctx, "USR-donor")
		require.NoError(t, err)
		require.Len(t, supplies, 2)
		for _, supply := range supplies {
			require.NotNil(t, supply.Shelter)
			assert.Equal(t, shelter.ID, supply.Shelter.ID)
			assert.Equal(t, shelter.Name, supply.Shelter.Name)
		}
	})

	t.Run("lists a shelter's incoming supplies", func(t *testing.T) {
		supplies, err := svc.ListSuppliesByShelter(ctx, shelter.ID)
		require.NoError(t, err)
		assert.Len(t, supplies, 2)
	})

	t.Run("rejects blank shelter id", func(t *testing.T) {
		_, err := svc.ListSuppliesByShelter(ctx, "")
		assert.Equal(t, "missing-shelter-id", apperr.CodeOf(err))
	})
}
