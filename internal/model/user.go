package model

import "time"

// User is the marketplace profile persisted under the session key. It is
// what the mock verifier hands back on a successful login and what the
// profile endpoints render.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	PhotoURL  string `json:"photoUrl"`
	BannerURL string `json:"bannerUrl"`
	IBAN      string `json:"iban"`
}

// OwnerFromUser builds the owner snapshot embedded into cars the user
// publishes. New owners start with a perfect rating and response rate.
func OwnerFromUser(u User) Owner {
	return Owner{
		ID:           u.ID,
		Name:         u.Name,
		PhotoURL:     u.PhotoURL,
		Rating:       5.0,
		ResponseRate: 100,
		Verified:     true,
	}
}

// Account mirrors the `users` table used by the database-backed
// credential verifier. Only the bcrypt hash is stored; the plain
// password never touches the database.
type Account struct {
	ID           uint64
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken models a row in `refresh_tokens`. The raw token is only
// ever returned to the client; the database keeps its SHA-256 hash.
type RefreshToken struct {
	ID        uint64
	UserID    uint64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
