package model

// AuthProvider tags how the current session was established.
type AuthProvider string

const (
	ProviderGuest  AuthProvider = "guest"
	ProviderGoogle AuthProvider = "google"
	ProviderApple  AuthProvider = "apple"
	ProviderEmail  AuthProvider = "email"
)

// User is the backend's user profile payload.
type User struct {
	ID          string `json:"id" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Nickname    string `json:"nickname"`
	AvatarURL   string `json:"avatarUrl" validate:"omitempty,url"`
	AccessLevel string `json:"accessLevel"`
	IsActive    bool   `json:"isActive"`
	IsVerified  bool   `json:"isVerified"`
	LastLoginAt string `json:"lastLoginAt"`
	CreatedAt   string `json:"createdAt"`
}

// AuthUser is the locally persisted record of the signed-in user.
// An absent record means a guest session.
type AuthUser struct {
	ID        string       `json:"id"`
	Email     string       `json:"email,omitempty"`
	Name      string       `json:"name,omitempty"`
	Nickname  string       `json:"nickname,omitempty"`
	AvatarURL string       `json:"avatarUrl,omitempty"`
	Provider  AuthProvider `json:"provider"`
}
