package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/opsdash/internal/domain/errors"
	"github.com/polkiloo/opsdash/internal/domain/model"
	"github.com/polkiloo/opsdash/internal/server/http/dto"
)

// SalesHandler serves the sales performance report.
type SalesHandler struct {
	facade SalesFacade
}

// NewSalesHandler constructs SalesHandler.
func NewSalesHandler(facade SalesFacade) *SalesHandler {
	return &SalesHandler{facade: facade}
}

// Report handles GET /sales.
func (h *SalesHandler) Report(c *gin.Context) {
	report, err := h.facade.SalesReport(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "no sales data found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	resp := dto.SalesReportResponse{Current: currentYearSales(report.Current)}
	if report.Previous != nil {
		prev := previousYearSales(report.Previous)
		resp.Previous = &prev
	}
	c.JSON(http.StatusOK, resp)
}

func currentYearSales(r *model.SalesRecord) dto.CurrentYearSales {
	return dto.CurrentYearSales{
		Year:            r.Year,
		Target:          r.Target,
		January:         r.January,
		February:        r.February,
		March:           r.March,
		April:           r.April,
		May:             r.May,
		June:            r.June,
		July:            r.July,
		August:          r.August,
		September:       r.September,
		October:         r.October,
		November:        r.November,
		December:        r.December,
		Total:           r.Total(),
		ProgressPercent: r.ProgressPercent(),
	}
}

func previousYearSales(r *model.SalesRecord) dto.PreviousYearSales {
	return dto.PreviousYearSales{
		Year:      r.Year,
		Target:    r.Target,
		January:   r.January,
		February:  r.February,
		March:     r.March,
		April:     r.April,
		May:       r.May,
		June:      r.June,
		July:      r.July,
		August:    r.August,
		September: r.September,
		October:   r.October,
		November:  r.November,
		December:  r.December,
		Total:     r.Total(),
	}
}
