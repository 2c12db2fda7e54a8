package domain

type HealthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db,omitempty"`
}
