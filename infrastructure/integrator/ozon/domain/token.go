package domain

// TokenResponse is the payload of the client-credentials token exchange.
// The Authorization header is built as "{TokenType} {AccessToken}".
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
