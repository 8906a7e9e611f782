package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"easypark/internal/domain"
	"easypark/internal/repository"
)

func TestVehicleRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "business_id", "plate", "category", "status", "entry_at", "exit_at"}).
			AddRow("veh-1", "biz-1", "ABC-123", "CAR", "INSIDE", time.Now(), nil)

		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1").
			WithArgs("veh-1").
			WillReturnRows(rows)

		vehicle, err := repo.GetByID(ctx, "veh-1")
		assert.NoError(t, err)
		assert.NotNil(t, vehicle)
		assert.Equal(t, "ABC-123", vehicle.Plate)
		assert.True(t, vehicle.ExitAt.IsZero())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1").
			WithArgs("veh-missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		vehicle, err := repo.GetByID(ctx, "veh-missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, vehicle)
	})
}

func TestVehicleRepository_GetInsideByPlate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "business_id", "plate", "category", "status", "entry_at", "exit_at"}).
			AddRow("veh-1", "biz-1", "ABC-123", "CAR", "INSIDE", time.Now(), nil)

		mock.ExpectQuery("SELECT (.+) FROM vehicles").
			WithArgs("biz-1", "ABC-123", string(domain.VehicleStatusInside)).
			WillReturnRows(rows)

		vehicle, err := repo.GetInsideByPlate(ctx, "biz-1", "ABC-123")
		assert.NoError(t, err)
		assert.NotNil(t, vehicle)
	})

	t.Run("NoMatchReturnsNil", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles").
			WithArgs("biz-1", "ZZZ-999", string(domain.VehicleStatusInside)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		vehicle, err := repo.GetInsideByPlate(ctx, "biz-1", "ZZZ-999")
		assert.NoError(t, err)
		assert.Nil(t, vehicle)
	})
}

func TestVehicleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		v := &domain.Vehicle{
			ID:         "veh-1",
			BusinessID: "biz-1",
			Plate:      "ABC-123",
			Category:   domain.CategoryCar,
			Status:     domain.VehicleStatusInside,
			EntryAt:    time.Now(),
		}

		mock.ExpectExec("INSERT INTO vehicles").
			WithArgs(v.ID, v.BusinessID, v.Plate, string(v.Category), string(v.Status), v.EntryAt, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, v)
		assert.NoError(t, err)
	})
}

func TestVehicleRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		v := &domain.Vehicle{
			ID:         "veh-1",
			BusinessID: "biz-1",
			Plate:      "ABC-123",
			Category:   domain.CategoryCar,
			Status:     domain.VehicleStatusOut,
			EntryAt:    time.Now().Add(-2 * time.Hour),
			ExitAt:     time.Now(),
		}

		mock.ExpectExec("UPDATE vehicles").
			WithArgs(v.Plate, string(v.Category), string(v.Status), v.EntryAt, sqlmock.AnyArg(), v.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, v)
		assert.NoError(t, err)
	})

	t.Run("MissingRow", func(t *testing.T) {
		v := &domain.Vehicle{ID: "veh-missing", Category: domain.CategoryCar, Status: domain.VehicleStatusOut}

		mock.ExpectExec("UPDATE vehicles").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, v)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestVehicleRepository_CountInside(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM vehicles").
		WithArgs("biz-1", string(domain.VehicleStatusInside)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountInside(ctx, "biz-1")
	assert.NoError(t, err)
	assert.Equal(t, 7, count)
}
