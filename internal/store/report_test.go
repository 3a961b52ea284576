package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"fleet_office/internal/models"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 mockDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestReportStore_TripMonthly(t *testing.T) {
	db, mock := newTestDB(t)
	st := NewReportStore(db)

	mock.ExpectQuery(`SELECT EXTRACT\(YEAR FROM start_date\)::int AS year.+FROM "trips".+deleted_at IS NULL.+GROUP BY.+ORDER BY year ASC, month ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"year", "month", "total_amount"}).
			AddRow(2023, 1, "150").
			AddRow(2023, 2, "90"))

	rows, err := st.TripMonthly()

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2023, rows[0].Year)
	assert.Equal(t, 1, rows[0].Month)
	assert.True(t, rows[0].TotalAmount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, rows[1].Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_FuelMonthly(t *testing.T) {
	db, mock := newTestDB(t)
	st := NewReportStore(db)

	mock.ExpectQuery(`SELECT EXTRACT\(YEAR FROM date\)::int AS year.+SUM\(quantity\).+FROM "fuels".+deleted_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"year", "month", "total_quantity", "total_amount"}).
			AddRow(2023, 2, 80.0, "640"))

	rows, err := st.FuelMonthly()

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 80.0, rows[0].TotalQuantity)
	assert.True(t, rows[0].TotalAmount.Equal(decimal.NewFromInt(640)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_CompletedTripTotals(t *testing.T) {
	db, mock := newTestDB(t)
	st := NewReportStore(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS count, COALESCE\(SUM\(amount\), 0\) AS amount FROM "trips" WHERE status = .+`).
		WithArgs(models.TripStatusCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"count", "amount"}).AddRow(4, "900"))

	totals, err := st.CompletedTripTotals()

	require.NoError(t, err)
	assert.Equal(t, int64(4), totals.Count)
	assert.True(t, totals.Amount.Equal(decimal.NewFromInt(900)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_NonMiscExpenseTotals(t *testing.T) {
	db, mock := newTestDB(t)
	st := NewReportStore(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS count, COALESCE\(SUM\(amount\), 0\) AS amount FROM "expenses" WHERE is_misc = .+`).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"count", "amount"}).AddRow(0, "0"))

	totals, err := st.NonMiscExpenseTotals()

	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.Count)
	assert.True(t, totals.Amount.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_FindExpenseHeadByLabel(t *testing.T) {
	t.Run("absence maps to nil without error", func(t *testing.T) {
		db, mock := newTestDB(t)
		st := NewReportStore(db)

		mock.ExpectQuery(`SELECT \* FROM "expense_heads" WHERE label = .+`).
			WithArgs(models.FuelExpenseLabel, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "label"}))

		head, err := st.FindExpenseHeadByLabel(models.FuelExpenseLabel)

		require.NoError(t, err)
		assert.Nil(t, head)
	})

	t.Run("existing head comes back with its id", func(t *testing.T) {
		db, mock := newTestDB(t)
		st := NewReportStore(db)

		mock.ExpectQuery(`SELECT \* FROM "expense_heads" WHERE label = .+`).
			WithArgs(models.FuelExpenseLabel, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "label"}).AddRow(12, models.FuelExpenseLabel))

		head, err := st.FindExpenseHeadByLabel(models.FuelExpenseLabel)

		require.NoError(t, err)
		require.NotNil(t, head)
		assert.Equal(t, uint(12), head.ID)
	})
}
