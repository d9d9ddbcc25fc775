package dto

type HealthResponse struct {
	Cache string `json:"cache"`
}
