package types

type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	Message string `json:"message"`
}

type RandomNumberEvent struct {
	RandomNumber float64 `json:"randomNumber"`
}
