package dto

// CurrentYearSales is the newest sales year with derived metrics.
type CurrentYearSales struct {
	Year            int     `json:"year"`
	Target          float64 `json:"target"`
	January         float64 `json:"january"`
	February        float64 `json:"february"`
	March           float64 `json:"march"`
	April           float64 `json:"april"`
	May             float64 `json:"may"`
	June            float64 `json:"june"`
	July            float64 `json:"july"`
	August          float64 `json:"august"`
	September       float64 `json:"september"`
	October         float64 `json:"october"`
	November        float64 `json:"november"`
	December        float64 `json:"december"`
	Total           float64 `json:"total"`
	ProgressPercent float64 `json:"progressPercent"`
}

// PreviousYearSales is the prior-year comparison row.
type PreviousYearSales struct {
	Year      int     `json:"year"`
	Target    float64 `json:"target"`
	January   float64 `json:"january"`
	February  float64 `json:"february"`
	March     float64 `json:"march"`
	April     float64 `json:"april"`
	May       float64 `json:"may"`
	June      float64 `json:"june"`
	July      float64 `json:"july"`
	August    float64 `json:"august"`
	September float64 `json:"september"`
	October   float64 `json:"october"`
	November  float64 `json:"november"`
	December  float64 `json:"december"`
	Total     float64 `json:"total"`
}

// SalesReportResponse pairs the current year with the optional previous one.
type SalesReportResponse struct {
	Current  CurrentYearSales   `json:"current"`
	Previous *PreviousYearSales `json:"previous"`
}
