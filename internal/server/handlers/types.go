package handlers

// ReportRequest describes the development report endpoint parameters.
// Repeated "via" query values become intermediate points in order.
type ReportRequest struct {
	Start string   `form:"start" json:"start" binding:"required"`
	End   string   `form:"end" json:"end" binding:"required"`
	Via   []string `form:"via" json:"via"`
	Days  int      `form:"days" json:"days" binding:"required,min=1,max=5"`
}

// ReportResponse carries the rendered report text.
type ReportResponse struct {
	Report string `json:"report"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp,omitempty"`
}
