// Package models defines the core data structures for categories, photos and users.
package models

// TimeLayout is the fixed-width UTC layout used for photo timestamps.
// Fixed width keeps lexicographic ordering of the stored TEXT values
// identical to chronological ordering, so the database can sort on them.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Category groups photos for browsing.
type Category struct {
	// ID is the unique identifier for the category.
	ID string `json:"id"`
	// Name is the display name, unique across all categories.
	Name string `json:"name"`
	// Description is optional free text.
	Description string `json:"description"`
}

// Photo is a single portfolio entry bound to an uploaded image file.
type Photo struct {
	// ID is the unique identifier for the photo.
	ID string `json:"id"`
	// Title is the display title.
	Title string `json:"title"`
	// Description is optional free text.
	Description string `json:"description"`
	// ImageURL is the public path of the stored image file.
	ImageURL string `json:"imageUrl"`
	// BackgroundColor is an optional display color hint.
	BackgroundColor string `json:"backgroundColor"`
	// CategoryID references a category; the category may no longer exist.
	CategoryID string `json:"categoryId"`
	// CreatedAt is set once at creation.
	CreatedAt string `json:"createdAt"`
	// UpdatedAt is refreshed on every update.
	UpdatedAt string `json:"updatedAt"`
}

// PhotoUpdate carries the updatable subset of Photo fields.
// A nil field means "leave unchanged". The id and timestamps are
// never accepted as input.
type PhotoUpdate struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	BackgroundColor *string `json:"backgroundColor"`
	CategoryID      *string `json:"categoryId"`
}

// User is an administrator account.
type User struct {
	// ID is the unique identifier for the user.
	ID string
	// Username is the login name.
	Username string
	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string
}
