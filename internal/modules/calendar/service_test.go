package calendar

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travelhub/internal/database"
	"travelhub/internal/domain"
	"travelhub/internal/repository"
)

func setupServiceTest(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:cal_service_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	hotel := domain.Hotel{
		Name: "Seaview Residency", City: "Panaji",
		Rooms: []domain.Room{{ID: 101, Name: "Deluxe", MaxAdults: 2, MaxPersons: 3}},
	}
	require.NoError(t, db.Create(&hotel).Error)

	svc := NewService(
		repository.NewAvailabilityRepository(db),
		repository.NewHotelRepository(db),
	)
	return svc, db
}

func TestServiceImportStoresCalendar(t *testing.T) {
	svc, _ := setupServiceTest(t)
	ctx := context.Background()

	file := strings.NewReader("date,no_of_room\n2025-01-01,10\n2025-01-02,8\n")
	res, err := svc.Import(ctx, 101, file)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, map[string]int{"2025-01-01": 10, "2025-01-02": 8}, res.Calendars[101])

	stored, err := svc.Calendar(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2025-01-01": 10, "2025-01-02": 8}, stored)
}

func TestServiceImportOverwritesOnlyImportedDates(t *testing.T) {
	svc, _ := setupServiceTest(t)
	ctx := context.Background()

	first := strings.NewReader("date,no_of_room\n2025-01-01,10\n2025-01-02,8\n")
	_, err := svc.Import(ctx, 101, first)
	require.NoError(t, err)

	second := strings.NewReader("date,no_of_room\n2025-01-02,3\n")
	res, err := svc.Import(ctx, 101, second)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)

	stored, err := svc.Calendar(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2025-01-01": 10, "2025-01-02": 3}, stored)
}

func TestServiceImportGlobalFormatGroupsByRoom(t *testing.T) {
	svc, db := setupServiceTest(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&domain.Room{ID: 102, HotelID: 1, Name: "Suite", MaxPersons: 4}).Error)

	file := strings.NewReader("room_id,date,no_of_room\n101,2025-02-01,5\n102,2025-02-01,2\n")
	res, err := svc.Import(ctx, 0, file)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, map[string]int{"2025-02-01": 5}, res.Calendars[101])
	assert.Equal(t, map[string]int{"2025-02-01": 2}, res.Calendars[102])
}

func TestServiceImportRejectsUnknownRoom(t *testing.T) {
	svc, _ := setupServiceTest(t)
	ctx := context.Background()

	file := strings.NewReader("date,no_of_room\n2025-01-01,10\n")
	_, err := svc.Import(ctx, 999, file)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestServiceImportRejectsEmptyFile(t *testing.T) {
	svc, _ := setupServiceTest(t)
	ctx := context.Background()

	_, err := svc.Import(ctx, 101, strings.NewReader("date,no_of_room\n"))
	assert.ErrorIs(t, err, ErrNoValidRows)
}

func TestServiceSampleMatchesImportFormat(t *testing.T) {
	svc, _ := setupServiceTest(t)
	ctx := context.Background()

	res, err := svc.Import(ctx, 101, strings.NewReader(string(svc.Sample(101))))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
}
