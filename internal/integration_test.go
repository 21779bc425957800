package internal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"relief-coordination-backend/internal/db"
	"relief-coordination-backend/internal/model"
	"relief-coordination-backend/internal/relief"
	"relief-coordination-backend/internal/store"
)

// TestReliefLifecycle walks a request from registration through supply,
// shipping and delivery, and verifies the statistics at the end.
func TestReliefLifecycle(t *testing.T) {
	// 1. Setup an in-memory SQLite database for testing.
	testDB, err := gorm.Open(sqlite.Open("file:lifecycle?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to the in-memory database: %v", err)
	}
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	require.NoError(t, db.Migrate(testDB))

	st := store.NewGormStore(testDB, 5*time.Second)
	svc := relief.NewService(st)
	ctx := context.Background()

	const managerID = "USR-officer"
	const donorID = "USR-donor"

	// 2. The officer registers a shelter.
	occupancy := 80
	shelter, err := svc.CreateShelter(ctx, relief.ShelterInput{
		Name:             "포항 실내 체육관",
		Location:         "경상북도 포항시 북구",
		DisasterType:     model.DisasterEarthquake,
		Capacity:         400,
		CurrentOccupancy: &occupancy,
		Status:           model.ShelterOperating,
		ContactPerson:    "이민호",
		ContactPhone:     "054-270-2114",
		ManagerID:        managerID,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, shelter.OccupancyRate)

	// 3. The officer registers a relief request.
	request, err := svc.CreateReliefRequest(ctx, relief.RequestInput{
		ShelterID:   shelter.ID,
		RequesterID: managerID,
		Priority:    model.PriorityUrgent,
		Items: []relief.ItemInput{
			{Category: "식량", Subcategory: "음료", ItemName: "생수", Quantity: 500, Unit: "병"},
			{Category: "생활용품", Subcategory: "침구", ItemName: "담요", Quantity: 200, Unit: "장"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, request.TotalItems)

	// 4. A donor with a matching standing preference discovers the request.
	_, err = svc.AddDonationPreference(ctx, donorID, "생수", 500, "병")
	require.NoError(t, err)

	matches, err := svc.GetMatchingReliefRequests(ctx, donorID)
	require.NoError(t, err)
	require.Len(t, matches.Requests, 1)
	assert.Equal(t, request.ID, matches.Requests[0].ID)

	// 5. The donor pledges a supply against the request.
	supply, err := svc.AddSupply(ctx, relief.SupplyInput{
		RequestID:        request.ID,
		SupplierID:       donorID,
		SupplierName:     "박영희",
		SupplierPhone:    "010-1234-5678",
		SuppliedQuantity: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, "생수", supply.ItemName)
	assert.Equal(t, 500, supply.RequestedQuantity)

	// 6. The officer confirms, the donor ships, the officer acknowledges.
	_, err = svc.UpdateSupplyStatus(ctx, managerID, supply.ID, model.SupplyConfirmed)
	require.NoError(t, err)

	shipped, err := svc.RegisterTracking(ctx, donorID, supply.ID, "CJ대한통운", "6890123456")
	require.NoError(t, err)
	require.NotNil(t, shipped.ShippedAt)

	_, err = svc.UpdateSupplyStatus(ctx, managerID, supply.ID, model.SupplyDelivered)
	require.NoError(t, err)

	// 7. The officer closes out the request.
	_, err = svc.UpdateRequestStatus(ctx, managerID, request.ID, model.RequestInProgress, "")
	require.NoError(t, err)
	_, err = svc.UpdateRequestStatus(ctx, managerID, request.ID, model.RequestCompleted, "")
	require.NoError(t, err)

	// The completed request no longer matches anyone.
	matches, err = svc.GetMatchingReliefRequests(ctx, donorID)
	require.NoError(t, err)
	assert.Empty(t, matches.Requests)

	// 8. Statistics reflect the week's activity.
	stats, err := svc.GetReliefStatistics(ctx, shelter.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalRequests)
	assert.Equal(t, 0, stats.PendingRequests)
	assert.Equal(t, 1, stats.TotalSupplies)
	assert.Equal(t, 100, stats.SupplyRate())
	require.Len(t, stats.ReliefItems, 1)
	assert.Equal(t, 2, stats.ReliefItems[0].Requested)
	assert.Equal(t, 1, stats.ReliefItems[0].Supplied)

	breakdown, err := svc.GetSupplyBreakdown(ctx, shelter.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, breakdown.Delivered)
}
