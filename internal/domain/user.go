package domain

import "time"

// User is the authenticated user's profile as returned by /users/me.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is a merchant's store record.
type Store struct {
	ID               string    `json:"id"`
	StoreName        string    `json:"storeName"`
	StoreDescription string    `json:"storeDescription,omitempty"`
	PhoneNumber      string    `json:"phoneNumber,omitempty"`
	BUMail           string    `json:"buMail,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Notification is one entry from the user's notification feed.
type Notification struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	IsRead    bool           `json:"isRead"`
	CreatedAt time.Time      `json:"createdAt"`
}
