package dto

// LoginRequest carries the OAuth2 password-grant form fields.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type GoogleTokenRequest struct {
	Token string `json:"token"`
}
