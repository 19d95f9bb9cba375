package inventory

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travelhub/internal/database"
	"travelhub/internal/domain"
	"travelhub/internal/repository"
)

func setupServiceTest(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:inv_service_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	require.NoError(t, db.Create(&domain.MealPlan{ID: 1, Name: "CP"}).Error)

	svc := NewService(
		repository.NewInventoryRepository(db),
		repository.NewMealPlanRepository(db),
	)
	return svc, db
}

func TestServiceSaveAndLoadRoundTrip(t *testing.T) {
	svc, _ := setupServiceTest(t)
	ctx := context.Background()

	d, _ := completeDraft(t)
	id, err := svc.Save(ctx, d, uuid.Nil)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, StatusSaved, d.Status)

	loaded, loadedID, err := svc.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, loadedID)
	assert.Equal(t, StatusSaved, loaded.Status)
	assert.Equal(t, ModeNormal, loaded.Mode)
	assert.Equal(t, "Panaji", loaded.Header.City)

	room, err := loaded.Room(101)
	require.NoError(t, err)
	assert.Equal(t, "Deluxe", room.Name)
	assert.Equal(t, 4, room.FrontRoomsCount)
	require.Len(t, room.Ranges, 1)

	rng := room.Ranges[0]
	got, ok := room.Grid.Get(PriceKey{RangeID: rng.ID, Day: Weekday, Occupancy: 2, MealPlanID: 1})
	require.True(t, ok)
	assert.Equal(t, 1500, got)

	// the rebuilt draft validates clean and can be saved again
	assert.Empty(t, loaded.Validate())
}

func TestServiceSaveUpdatesExistingInventory(t *testing.T) {
	svc, db := setupServiceTest(t)
	ctx := context.Background()

	d, room := completeDraft(t)
	id, err := svc.Save(ctx, d, uuid.Nil)
	require.NoError(t, err)

	room.FrontRoomsCount = 9
	d.Status = StatusDraft
	secondID, err := svc.Save(ctx, d, id)
	require.NoError(t, err)
	assert.Equal(t, id, secondID)

	var count int64
	require.NoError(t, db.Model(&domain.Inventory{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	loaded, _, err := svc.Load(ctx, id)
	require.NoError(t, err)
	updated, err := loaded.Room(101)
	require.NoError(t, err)
	assert.Equal(t, 9, updated.FrontRoomsCount)
}

func TestServiceSaveRejectsIncompleteDraft(t *testing.T) {
	svc, _ := setupServiceTest(t)
	ctx := context.Background()

	d, room := completeDraft(t)
	room.Grid.Clear(PriceKey{RangeID: room.Ranges[0].ID, Day: Weekday, Occupancy: 1, MealPlanID: 1})

	_, err := svc.Save(ctx, d, uuid.Nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Violations)
	assert.Equal(t, StatusInvalid, d.Status)
}

func TestServiceLoadFillsMealPlanCatalog(t *testing.T) {
	svc, db := setupServiceTest(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&domain.MealPlan{ID: 2, Name: "MAP"}).Error)

	d, _ := completeDraft(t)
	id, err := svc.Save(ctx, d, uuid.Nil)
	require.NoError(t, err)

	loaded, _, err := svc.Load(ctx, id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, loaded.AllMealPlans)
}

func TestServiceGetPayloadReturnsStoredForm(t *testing.T) {
	svc, _ := setupServiceTest(t)
	ctx := context.Background()

	d, _ := completeDraft(t)
	id, err := svc.Save(ctx, d, uuid.Nil)
	require.NoError(t, err)

	p, err := svc.GetPayload(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ModeNormal, p.Mode)
	assert.Equal(t, int64(7), p.HotelID)
	require.Len(t, p.Items, 2)
	assert.Equal(t, 1000, p.Items[0].Amount)
}
