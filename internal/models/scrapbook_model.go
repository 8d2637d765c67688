package models

const ScrapbookEntriesTableName = "scrapbook_entries"

// ScrapbookEntry is a user-authored record of a personal experience,
// optionally shared publicly. Only the owner may mutate it; a private
// entry is visible to its owner alone.
type ScrapbookEntry struct {
	ID          uint     `json:"id"`
	OwnerID     uint     `json:"owner_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Date        string   `json:"date,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Rating      *int     `json:"rating,omitempty"`
	IsPublic    bool     `json:"is_public"`
}

// ScrapbookInput is the creation payload for a scrapbook entry
type ScrapbookInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Date        string   `json:"date"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
	Rating      *int     `json:"rating"`
	IsPublic    bool     `json:"is_public"`
}

// ScrapbookPatch is a partial update. Only non-nil fields are applied.
type ScrapbookPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Date        *string   `json:"date"`
	ImageURL    *string   `json:"image_url"`
	Tags        *[]string `json:"tags"`
	Rating      *int      `json:"rating"`
	IsPublic    *bool     `json:"is_public"`
}
