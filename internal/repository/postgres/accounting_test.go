package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"easypark/internal/domain"
)

func accountingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "business_id", "kind", "vehicle_id", "plate", "category",
		"entry_at", "exit_at", "hours_parked", "hours_to_pay", "rate_per_hour", "amount",
		"night_charge", "debt_id", "currency", "description", "operation_date", "created_at",
	})
}

func TestAccountingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAccountingRepository(db)
	ctx := context.Background()

	t.Run("Settlement", func(t *testing.T) {
		record := &domain.AccountingRecord{
			ID:            "rec-1",
			BusinessID:    "biz-1",
			Kind:          domain.AccountingSettlement,
			VehicleID:     "veh-1",
			Plate:         "ABC-123",
			Category:      domain.CategoryCar,
			EntryAt:       time.Now().Add(-3 * time.Hour),
			ExitAt:        time.Now(),
			HoursParked:   3.0,
			HoursToPay:    3,
			RatePerHour:   4.0,
			Amount:        12.0,
			Currency:      "PEN",
			OperationDate: "2025-06-15",
			CreatedAt:     time.Now(),
		}

		mock.ExpectExec("INSERT INTO accounting_records").
			WithArgs(record.ID, record.BusinessID, string(record.Kind), record.VehicleID,
				record.Plate, string(record.Category), sqlmock.AnyArg(), sqlmock.AnyArg(),
				record.HoursParked, record.HoursToPay, record.RatePerHour, record.Amount,
				record.NightCharge, nil, record.Currency, record.Description,
				record.OperationDate, record.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, record)
		assert.NoError(t, err)
	})

	t.Run("ManualEntryWithoutVehicle", func(t *testing.T) {
		record := &domain.AccountingRecord{
			ID:            "rec-2",
			BusinessID:    "biz-1",
			Kind:          domain.AccountingManualExpense,
			Amount:        -35.0,
			Currency:      "PEN",
			Description:   "broom and cleaning supplies",
			OperationDate: "2025-06-15",
			CreatedAt:     time.Now(),
		}

		mock.ExpectExec("INSERT INTO accounting_records").
			WithArgs(record.ID, record.BusinessID, string(record.Kind), nil,
				record.Plate, string(record.Category), nil, nil,
				record.HoursParked, record.HoursToPay, record.RatePerHour, record.Amount,
				record.NightCharge, nil, record.Currency, record.Description,
				record.OperationDate, record.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, record)
		assert.NoError(t, err)
	})
}

func TestAccountingRepository_SearchByPlate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAccountingRepository(db)
	ctx := context.Background()

	rows := accountingRows().
		AddRow("rec-1", "biz-1", "SETTLEMENT", "veh-1", "ABC-123", "CAR",
			time.Now().Add(-3*time.Hour), time.Now(), 3.0, 3, 4.0, 12.0,
			0.0, nil, "PEN", "", "2025-06-15", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM accounting_records").
		WithArgs("biz-1", "ABC").
		WillReturnRows(rows)

	records, err := repo.SearchByPlate(ctx, "biz-1", "ABC")
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "ABC-123", records[0].Plate)
	assert.Empty(t, records[0].DebtID)
}

func TestAccountingRepository_Summarize(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAccountingRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"total", "count", "car_truck", "motorcycle", "avg_stay"}).
		AddRow(412.5, 31, 360.0, 52.5, 2.8)

	mock.ExpectQuery("SELECT (.+) FROM accounting_records").
		WithArgs("biz-1", string(domain.CategoryCar), string(domain.CategoryTruck),
			string(domain.CategoryMotorcycle), string(domain.AccountingSettlement)).
		WillReturnRows(rows)

	summary, err := repo.Summarize(ctx, "biz-1")
	assert.NoError(t, err)
	assert.Equal(t, 412.5, summary.TotalRevenue)
	assert.Equal(t, 31, summary.TotalRecords)
	assert.Equal(t, 2.8, summary.AverageStayHours)
}

func TestAccountingRepository_RevenueByDay(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAccountingRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"operation_date", "revenue"}).
		AddRow("2025-06-15", 120.0).
		AddRow("2025-06-14", 95.5)

	mock.ExpectQuery("SELECT operation_date, (.+) FROM accounting_records").
		WithArgs("biz-1").
		WillReturnRows(rows)

	buckets, err := repo.RevenueByDay(ctx, "biz-1")
	assert.NoError(t, err)
	assert.Len(t, buckets, 2)
	assert.Equal(t, "2025-06-15", buckets[0].Date)
	assert.Equal(t, 95.5, buckets[1].Revenue)
}
