package analytics

type CategorySlice struct {
	Bookings int64 `json:"bookings"`
	Guests   int64 `json:"guests"`
}

type DailySalesRow struct {
	Date      string         `json:"date"`
	Bookings  int64          `json:"bookings"`
	Guests    int64          `json:"guests"`
	Breakfast *CategorySlice `json:"breakfast,omitempty"`
	Lunch     *CategorySlice `json:"lunch,omitempty"`
	Dinner    *CategorySlice `json:"dinner,omitempty"`
}

type FunnelCounts struct {
	Pending        int64 `json:"pending"`
	Accepted       int64 `json:"accepted"`
	PaymentPending int64 `json:"paymentPending"`
	Confirmed      int64 `json:"confirmed"`
	Executed       int64 `json:"executed"`
	Rejected       int64 `json:"rejected"`
}

type FunnelConversions struct {
	PendingToConfirmed  float64 `json:"pending_to_confirmed"`
	ConfirmedToExecuted float64 `json:"confirmed_to_executed"`
	OverallToExecuted   float64 `json:"overall_to_executed"`
}

type FunnelReport struct {
	Counts      FunnelCounts      `json:"counts"`
	Conversions FunnelConversions `json:"conversions"`
}

type ForecastDay struct {
	Day    int    `json:"day"`
	Date   string `json:"date"`
	Guests int64  `json:"guests"`
}
