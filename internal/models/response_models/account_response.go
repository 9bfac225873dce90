package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}
