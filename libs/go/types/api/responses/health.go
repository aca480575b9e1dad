package responses

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}
