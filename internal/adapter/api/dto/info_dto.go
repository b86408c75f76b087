package dto

// InfoResponse descreve o serviço em GET /
type InfoResponse struct {
	Message   string            `json:"message" example:"Dummy Messages API"`
	Version   string            `json:"version" example:"1.0.0"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse é a resposta de GET /health
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp int64  `json:"timestamp" example:"1700000000"`
}
