package model

// SalesRecord holds one year of monthly sales figures and the annual target.
// Month values missing in storage are read as 0, so summation never fails.
type SalesRecord struct {
	Year      int
	Target    float64
	January   float64
	February  float64
	March     float64
	April     float64
	May       float64
	June      float64
	July      float64
	August    float64
	September float64
	October   float64
	November  float64
	December  float64
}

// Months returns the twelve monthly figures in calendar order.
func (r *SalesRecord) Months() [12]float64 {
	return [12]float64{
		r.January, r.February, r.March, r.April,
		r.May, r.June, r.July, r.August,
		r.September, r.October, r.November, r.December,
	}
}

// Total returns the year-to-date sum of the monthly figures.
func (r *SalesRecord) Total() float64 {
	var sum float64
	for _, v := range r.Months() {
		sum += v
	}
	return sum
}

// ProgressPercent returns the percent of the annual target reached.
// A target of zero or below yields 0 rather than a division error.
func (r *SalesRecord) ProgressPercent() float64 {
	if r.Target <= 0 {
		return 0
	}
	return r.Total() / r.Target * 100
}

// SalesReport pairs the latest sales year with the one before it.
// Previous is nil when no record exists for the prior year.
type SalesReport struct {
	Current  *SalesRecord
	Previous *SalesRecord
}
