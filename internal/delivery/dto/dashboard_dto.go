package dto

type DashboardStatsResponse struct {
	TotalPatients  int64 `json:"total_patients"`
	TotalReports   int64 `json:"total_reports"`
	PendingReports int64 `json:"pending_reports"`
}
