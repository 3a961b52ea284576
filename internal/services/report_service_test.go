package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleet_office/internal/apperror"
	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
	"fleet_office/internal/store"
)

// MockReportStore is a mock implementation of ReportStore
type MockReportStore struct {
	mock.Mock
}

func (m *MockReportStore) AccountHeadsWithFinancials() ([]models.AccountHead, error) {
	args := m.Called()
	return args.Get(0).([]models.AccountHead), args.Error(1)
}

func (m *MockReportStore) FindExpenseHeadByLabel(label string) (*models.ExpenseHead, error) {
	args := m.Called(label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExpenseHead), args.Error(1)
}

func (m *MockReportStore) VehiclesWithFuelExpenses(fuelHeadID uint) ([]models.Vehicle, error) {
	args := m.Called(fuelHeadID)
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockReportStore) EquipmentWithMovements(p query.Predicate, pages pagination.Pages) ([]models.Equipment, int64, error) {
	args := m.Called(p, pages)
	return args.Get(0).([]models.Equipment), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportStore) VehiclesWithActivity(p query.Predicate, pages pagination.Pages, rng store.DateRange) ([]models.Vehicle, int64, error) {
	args := m.Called(p, pages, rng)
	return args.Get(0).([]models.Vehicle), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportStore) CompletedTripTotals() (store.TripTotals, error) {
	args := m.Called()
	return args.Get(0).(store.TripTotals), args.Error(1)
}

func (m *MockReportStore) NonMiscExpenseTotals() (store.ExpenseTotals, error) {
	args := m.Called()
	return args.Get(0).(store.ExpenseTotals), args.Error(1)
}

func (m *MockReportStore) TripMonthly() ([]store.TripMonthlyRow, error) {
	args := m.Called()
	return args.Get(0).([]store.TripMonthlyRow), args.Error(1)
}

func (m *MockReportStore) FuelMonthly() ([]store.FuelMonthlyRow, error) {
	args := m.Called()
	return args.Get(0).([]store.FuelMonthlyRow), args.Error(1)
}

func TestReportService_FuelStatus(t *testing.T) {
	t.Run("missing fuel expense head fails and skips the vehicle query", func(t *testing.T) {
		st := new(MockReportStore)
		service := NewReportService(st)

		st.On("FindExpenseHeadByLabel", models.FuelExpenseLabel).Return(nil, nil)

		vehicles, err := service.FuelStatus()

		require.Error(t, err)
		assert.Nil(t, vehicles)
		assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))
		assert.EqualError(t, err, "First setup your account")
		st.AssertNotCalled(t, "VehiclesWithFuelExpenses", mock.Anything)
	})

	t.Run("returns vehicles with fuel expenses once configured", func(t *testing.T) {
		st := new(MockReportStore)
		service := NewReportService(st)

		head := &models.ExpenseHead{Label: models.FuelExpenseLabel}
		head.ID = 12
		st.On("FindExpenseHeadByLabel", models.FuelExpenseLabel).Return(head, nil)
		st.On("VehiclesWithFuelExpenses", uint(12)).Return([]models.Vehicle{{RegNo: "KAA 001A"}}, nil)

		vehicles, err := service.FuelStatus()

		require.NoError(t, err)
		require.Len(t, vehicles, 1)
		assert.Equal(t, "KAA 001A", vehicles[0].RegNo)
		st.AssertExpectations(t)
	})
}

func TestReportService_StockStatus(t *testing.T) {
	t.Run("annotates equipment with incoming and in-house totals", func(t *testing.T) {
		st := new(MockReportStore)
		service := NewReportService(st)

		oil := models.Equipment{
			Label: "Engine Oil",
			EquipmentIns: []models.EquipmentIn{
				{Quantity: 40}, {Quantity: 10},
			},
			EquipmentUses: []models.EquipmentUse{
				{Quantity: 12.5},
			},
		}

		st.On("EquipmentWithMovements", mock.Anything, mock.Anything).
			Return([]models.Equipment{oil}, int64(1), nil)

		rows, pages, total, err := service.StockStatus(StockStatusFilters{}, pagination.Options{})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, 1, pages.Page)
		require.Len(t, rows, 1)
		assert.Equal(t, 50.0, rows[0].TotalInQuantity)
		assert.Equal(t, 12.5, rows[0].TotalUsedQuantity)
	})

	t.Run("id filter becomes a single exact condition", func(t *testing.T) {
		st := new(MockReportStore)
		service := NewReportService(st)

		expected := query.Predicate{And: []query.Condition{{Field: "id", Value: uint(3)}}}
		st.On("EquipmentWithMovements", expected, mock.Anything).
			Return([]models.Equipment{}, int64(0), nil)

		_, _, _, err := service.StockStatus(StockStatusFilters{ID: "3"}, pagination.Options{})

		require.NoError(t, err)
		st.AssertExpectations(t)
	})

	t.Run("non-numeric id is rejected before querying", func(t *testing.T) {
		st := new(MockReportStore)
		service := NewReportService(st)

		_, _, _, err := service.StockStatus(StockStatusFilters{ID: "abc"}, pagination.Options{})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))
		st.AssertNotCalled(t, "EquipmentWithMovements", mock.Anything, mock.Anything)
	})
}

func TestReportService_VehicleSummary(t *testing.T) {
	t.Run("widens the date range to inclusive full days", func(t *testing.T) {
		st := new(MockReportStore)
		service := NewReportService(st)

		wantStart := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2023, 1, 31, 23, 59, 59, 0, time.UTC)

		st.On("VehiclesWithActivity", mock.Anything, mock.Anything, mock.MatchedBy(func(rng store.DateRange) bool {
			return rng.Start != nil && rng.Start.Equal(wantStart) &&
				rng.End != nil && rng.End.Equal(wantEnd)
		})).Return([]models.Vehicle{}, int64(0), nil)

		_, _, _, err := service.VehicleSummary(VehicleSummaryFilters{
			StartDate: "2023-01-01",
			EndDate:   "2023-01-31",
		}, pagination.Options{})

		require.NoError(t, err)
		st.AssertExpectations(t)
	})

	t.Run("non-numeric vehicleId is rejected before querying", func(t *testing.T) {
		st := new(MockReportStore)
		service := NewReportService(st)

		_, _, _, err := service.VehicleSummary(VehicleSummaryFilters{VehicleID: "abc"}, pagination.Options{})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))
		st.AssertNotCalled(t, "VehiclesWithActivity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed dates before querying", func(t *testing.T) {
		st := new(MockReportStore)
		service := NewReportService(st)

		_, _, _, err := service.VehicleSummary(VehicleSummaryFilters{StartDate: "01/02/2023"}, pagination.Options{})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))
		st.AssertNotCalled(t, "VehiclesWithActivity", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReportService_GetTripSummary(t *testing.T) {
	t.Run("populates all fields when rows exist", func(t *testing.T) {
		st := new(MockReportStore)
		service := NewReportService(st)

		st.On("CompletedTripTotals").Return(store.TripTotals{
			Count:  4,
			Amount: decimal.NewFromInt(900),
		}, nil)
		st.On("NonMiscExpenseTotals").Return(store.ExpenseTotals{
			Count:  2,
			Amount: decimal.NewFromInt(120),
		}, nil)

		summary, err := service.GetTripSummary()

		require.NoError(t, err)
		require.NotNil(t, summary.Count)
		assert.Equal(t, int64(4), *summary.Count)
		require.NotNil(t, summary.Amount)
		assert.True(t, summary.Amount.Equal(decimal.NewFromInt(900)))
		require.NotNil(t, summary.Expense)
		assert.True(t, summary.Expense.Equal(decimal.NewFromInt(120)))
	})

	t.Run("omits fields when no rows match", func(t *testing.T) {
		st := new(MockReportStore)
		service := NewReportService(st)

		st.On("CompletedTripTotals").Return(store.TripTotals{}, nil)
		st.On("NonMiscExpenseTotals").Return(store.ExpenseTotals{}, nil)

		summary, err := service.GetTripSummary()

		require.NoError(t, err)
		assert.Nil(t, summary.Count)
		assert.Nil(t, summary.Amount)
		assert.Nil(t, summary.Expense)
	})
}

func TestReportService_MonthlySummaries(t *testing.T) {
	t.Run("trip groups pass through in chronological order", func(t *testing.T) {
		st := new(MockReportStore)
		service := NewReportService(st)

		st.On("TripMonthly").Return([]store.TripMonthlyRow{
			{Year: 2023, Month: 1, TotalAmount: decimal.NewFromInt(150)},
		}, nil)

		rows, err := service.TripSummaryGroupByMonthYear()

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 2023, rows[0].Year)
		assert.Equal(t, 1, rows[0].Month)
		assert.True(t, rows[0].TotalAmount.Equal(decimal.NewFromInt(150)))
	})

	t.Run("fuel groups carry quantity and amount", func(t *testing.T) {
		st := new(MockReportStore)
		service := NewReportService(st)

		st.On("FuelMonthly").Return([]store.FuelMonthlyRow{
			{Year: 2023, Month: 2, TotalQuantity: 80, TotalAmount: decimal.NewFromInt(640)},
		}, nil)

		rows, err := service.FuelSummaryGroupByMonthYear()

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 80.0, rows[0].TotalQuantity)
	})
}

func TestBuildDayRange(t *testing.T) {
	t.Run("open ends stay nil", func(t *testing.T) {
		rng, err := buildDayRange("", "")

		require.NoError(t, err)
		assert.True(t, rng.IsZero())
	})

	t.Run("end of day lands on 23:59:59", func(t *testing.T) {
		rng, err := buildDayRange("", "2023-01-31")

		require.NoError(t, err)
		require.NotNil(t, rng.End)
		assert.Equal(t, time.Date(2023, 1, 31, 23, 59, 59, 0, time.UTC), *rng.End)
	})
}
