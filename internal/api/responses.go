package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// ResultResponse wraps list-style payloads the mobile clients read under "result".
type ResultResponse struct {
	Result interface{} `json:"result"`
}
