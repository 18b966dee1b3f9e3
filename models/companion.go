package models

import "time"

// CompanionProfile is a bookable companion as stored in the directory.
type CompanionProfile struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Age            int       `bson:"age" json:"age"`
	Rating         float64   `bson:"rating" json:"rating"`
	HourlyRate     float64   `bson:"hourly_rate" json:"hourlyRate"`
	Bio            string    `bson:"bio" json:"bio"`
	Interests      []string  `bson:"interests" json:"interests"`
	ImageURL       string    `bson:"image_url,omitempty" json:"image,omitempty"`
	Verified       bool      `bson:"verified" json:"verified"`
	AvailableSlots []string  `bson:"available_slots,omitempty" json:"availableSlots,omitempty"`
	FCMToken       string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}
