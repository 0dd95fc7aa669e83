package dto

// LoginRequest represents credentials payload.
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// UserResponse is the public part of an account.
type UserResponse struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
	Role     string `json:"role"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
