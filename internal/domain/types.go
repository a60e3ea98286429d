package domain

// DateLayout is the calendar date format used by every record date.
const DateLayout = "2006-01-02"

// ReportFilter narrows the records an aggregation reads.
// Empty fields match everything.
type ReportFilter struct {
	DateFrom string `json:"dateFrom,omitempty" form:"dateFrom"`
	DateTo   string `json:"dateTo,omitempty" form:"dateTo"`
	TruckID  string `json:"truckId,omitempty" form:"truckId"`
	Status   string `json:"status,omitempty" form:"status"`
}

// IsZero reports whether no filter field is set.
func (f ReportFilter) IsZero() bool {
	return f.DateFrom == "" && f.DateTo == "" && f.TruckID == "" && f.Status == ""
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
