package dto

// SignupRequest defines the body for POST /v1/signup.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,notblank,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6"`
}

// SignupResponse carries the new customer's external id.
type SignupResponse struct {
	CustomerXID string `json:"customer_xid"`
}

// InitRequest defines the body for POST /v1/init.
type InitRequest struct {
	CustomerXID string `json:"customer_xid" binding:"required"`
}

// InitResponse carries the freshly issued bearer token.
type InitResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
}

// ExchangeCodeRequest defines the body for POST /v1/auth/google.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
