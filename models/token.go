package models

// Token is the response of POST /admin/login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AdminLogin struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}
