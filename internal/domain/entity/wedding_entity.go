package entity

import (
	"time"
)

// DefaultTheme is applied whenever a card is created or replaced without an
// explicit theme.
const DefaultTheme = "classic"

// WeddingProfile is the wedding card for a single user. Exactly one per
// user_id; custom_url, when set, is unique across all cards.
// The list sections are loosely typed on purpose: the frontend owns their
// shape and the backend stores them as-is.
type WeddingProfile struct {
	ID             string           `json:"id" bson:"_id"`
	UserID         string           `json:"user_id" bson:"user_id"`
	CoupleName1    string           `json:"couple_name_1" bson:"couple_name_1"`
	CoupleName2    string           `json:"couple_name_2" bson:"couple_name_2"`
	WeddingDate    string           `json:"wedding_date" bson:"wedding_date"`
	VenueName      string           `json:"venue_name" bson:"venue_name"`
	VenueLocation  string           `json:"venue_location" bson:"venue_location"`
	TheirStory     string           `json:"their_story" bson:"their_story"`
	ScheduleEvents []map[string]any `json:"schedule_events" bson:"schedule_events"`
	GalleryPhotos  []string         `json:"gallery_photos" bson:"gallery_photos"`
	BridalParty    []map[string]any `json:"bridal_party" bson:"bridal_party"`
	GroomParty     []map[string]any `json:"groom_party" bson:"groom_party"`
	FAQs           []map[string]any `json:"faqs" bson:"faqs"`
	Theme          string           `json:"theme" bson:"theme"`
	CustomURL      string           `json:"custom_url" bson:"custom_url"`
	StoryTimeline  []map[string]any `json:"story_timeline" bson:"story_timeline"`
	RegistryItems  []map[string]any `json:"registry_items" bson:"registry_items"`
	HoneymoonFund  map[string]any   `json:"honeymoon_fund,omitempty" bson:"honeymoon_fund,omitempty"`
	ImportantInfo  map[string]any   `json:"important_info" bson:"important_info"`
	CreatedAt      time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" bson:"updated_at"`
}

func (w WeddingProfile) RecordID() string { return w.ID }

func (w WeddingProfile) FieldValue(name string) (string, bool) {
	switch name {
	case "user_id":
		return w.UserID, true
	case "custom_url":
		return w.CustomURL, true
	case "_id", "id":
		return w.ID, true
	default:
		return "", false
	}
}

// PublicWeddingProfile is the unauthenticated view of a card: the full
// record minus the owning user id.
type PublicWeddingProfile struct {
	ID             string           `json:"id"`
	CoupleName1    string           `json:"couple_name_1"`
	CoupleName2    string           `json:"couple_name_2"`
	WeddingDate    string           `json:"wedding_date"`
	VenueName      string           `json:"venue_name"`
	VenueLocation  string           `json:"venue_location"`
	TheirStory     string           `json:"their_story"`
	ScheduleEvents []map[string]any `json:"schedule_events"`
	GalleryPhotos  []string         `json:"gallery_photos"`
	BridalParty    []map[string]any `json:"bridal_party"`
	GroomParty     []map[string]any `json:"groom_party"`
	FAQs           []map[string]any `json:"faqs"`
	Theme          string           `json:"theme"`
	CustomURL      string           `json:"custom_url"`
	StoryTimeline  []map[string]any `json:"story_timeline"`
	RegistryItems  []map[string]any `json:"registry_items"`
	HoneymoonFund  map[string]any   `json:"honeymoon_fund,omitempty"`
	ImportantInfo  map[string]any   `json:"important_info"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Public strips the owner reference for anonymous consumers.
func (w WeddingProfile) Public() PublicWeddingProfile {
	return PublicWeddingProfile{
		ID:             w.ID,
		CoupleName1:    w.CoupleName1,
		CoupleName2:    w.CoupleName2,
		WeddingDate:    w.WeddingDate,
		VenueName:      w.VenueName,
		VenueLocation:  w.VenueLocation,
		TheirStory:     w.TheirStory,
		ScheduleEvents: w.ScheduleEvents,
		GalleryPhotos:  w.GalleryPhotos,
		BridalParty:    w.BridalParty,
		GroomParty:     w.GroomParty,
		FAQs:           w.FAQs,
		Theme:          w.Theme,
		CustomURL:      w.CustomURL,
		StoryTimeline:  w.StoryTimeline,
		RegistryItems:  w.RegistryItems,
		HoneymoonFund:  w.HoneymoonFund,
		ImportantInfo:  w.ImportantInfo,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}
