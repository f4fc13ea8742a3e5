package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/opsdash/internal/domain/errors"
	"github.com/polkiloo/opsdash/internal/domain/model"
	testhelpers "github.com/polkiloo/opsdash/internal/test"
)

func TestSalesReportWithPreviousYear(t *testing.T) {
	current := &model.SalesRecord{
		Year: 2024, Target: 1000,
		January: 100, February: 50, March: 150,
	}
	previous := &model.SalesRecord{Year: 2023, Target: 400, December: 50}
	uc := NewSalesUseCase(testhelpers.NewSalesRepositoryStub(current, previous))

	report, err := uc.Report(context.Background())
	require.NoError(t, err)
	require.NotNil(t, report.Current)
	require.NotNil(t, report.Previous)

	assert.Equal(t, 2024, report.Current.Year)
	assert.InDelta(t, 300, report.Current.Total(), 1e-9)
	assert.InDelta(t, 30, report.Current.ProgressPercent(), 1e-9)
	assert.Equal(t, 2023, report.Previous.Year)
	assert.InDelta(t, 50, report.Previous.Total(), 1e-9)
}

func TestSalesReportSingleYear(t *testing.T) {
	uc := NewSalesUseCase(testhelpers.NewSalesRepositoryStub(
		&model.SalesRecord{Year: 2024, Target: 100, June: 40},
	))

	report, err := uc.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2024, report.Current.Year)
	assert.Nil(t, report.Previous)
}

func TestSalesReportSkipsGapYears(t *testing.T) {
	uc := NewSalesUseCase(testhelpers.NewSalesRepositoryStub(
		&model.SalesRecord{Year: 2024, Target: 100},
		&model.SalesRecord{Year: 2021, Target: 100},
	))

	report, err := uc.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2024, report.Current.Year)
	assert.Nil(t, report.Previous, "a year older than current-1 must not be reported as previous")
}

func TestSalesReportEmptyTable(t *testing.T) {
	uc := NewSalesUseCase(testhelpers.NewSalesRepositoryStub())

	_, err := uc.Report(context.Background())
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestSalesReportPropagatesRepositoryError(t *testing.T) {
	repoErr := errors.New("connection lost")
	repo := testhelpers.NewSalesRepositoryStub(&model.SalesRecord{Year: 2024, Target: 100})
	repo.GetByYearFn = func(context.Context, int) (*model.SalesRecord, error) {
		return nil, repoErr
	}
	uc := NewSalesUseCase(repo)

	_, err := uc.Report(context.Background())
	assert.ErrorIs(t, err, repoErr)
}

func TestSalesReportZeroTarget(t *testing.T) {
	uc := NewSalesUseCase(testhelpers.NewSalesRepositoryStub(
		&model.SalesRecord{Year: 2024, Target: 0, March: 10},
	))

	report, err := uc.Report(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Current.ProgressPercent())
}
