package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/opsdash/internal/domain/errors"
	"github.com/polkiloo/opsdash/internal/domain/model"
	"github.com/polkiloo/opsdash/internal/domain/repository"
)

// SalesUseCase builds the sales performance report.
type SalesUseCase struct {
	sales repository.SalesRepository
}

// NewSalesUseCase constructs SalesUseCase.
func NewSalesUseCase(sales repository.SalesRepository) *SalesUseCase {
	return &SalesUseCase{sales: sales}
}

// Report selects the newest year as current and the year before it as
// previous. A missing previous year is not an error; an empty sales table
// is ErrNotFound since there is nothing to report.
func (u *SalesUseCase) Report(ctx context.Context) (*model.SalesReport, error) {
	maxYear, err := u.sales.MaxYear(ctx)
	if err != nil {
		return nil, err
	}

	current, err := u.sales.GetByYear(ctx, maxYear)
	if err != nil {
		return nil, err
	}

	report := &model.SalesReport{Current: current}

	previous, err := u.sales.GetByYear(ctx, maxYear-1)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
	} else {
		report.Previous = previous
	}

	return report, nil
}
