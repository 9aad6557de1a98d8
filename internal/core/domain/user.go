package domain

// User is a mobile-app account as seen by the portal.
type User struct {
	UID      string     `json:"uid"`
	Username string     `json:"username"`
	PhotoURL string     `json:"photo_url,omitempty"`
	Status   UserStatus `json:"status"`
}

// UserSummary is a user together with their effective roles.
type UserSummary struct {
	User
	Roles RoleSet `json:"roles"`
}

// Identity is what an authentication provider returns after a successful
// sign-in.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// Principal is the signed-in operator.
type Principal struct {
	UID      string  `json:"uid"`
	Email    string  `json:"email,omitempty"`
	Username string  `json:"username"`
	PhotoURL string  `json:"photo_url,omitempty"`
	Roles    RoleSet `json:"roles"`
}

// Credential is a locally stored operator login.
type Credential struct {
	UID          string
	Email        string
	DisplayName  string
	PasswordHash string
}

// Actor is the operator performing a request, with roles re-read from the
// store for that request.
type Actor struct {
	UID   string
	Roles RoleSet
}
