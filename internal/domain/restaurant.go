package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Address struct {
	Line1   string `json:"line1" validate:"required,min=3"`
	Line2   string `json:"line2" validate:"required,min=3"`
	Line3   string `json:"line3,omitempty"`
	Zip     string `json:"zip" validate:"required"`
	City    string `json:"city" validate:"required,min=2"`
	State   string `json:"state" validate:"required,min=2"`
	Country string `json:"country" validate:"required,min=2"`
}

type HoursRange struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type OpeningHours struct {
	Weekday HoursRange `json:"weekday" validate:"required"`
	Weekend HoursRange `json:"weekend" validate:"required"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty" validate:"omitempty,url"`
	Twitter   string `json:"twitter,omitempty" validate:"omitempty,url"`
	Instagram string `json:"instagram,omitempty" validate:"omitempty,url"`
}

// Restaurant is the directory entry owned by exactly one owner account.
// Structured fields (address, hours, social links) are stored as JSON
// columns, mirroring the document layout they arrived in.
type Restaurant struct {
	ID           string         `json:"id"`
	OwnerID      string         `json:"owner_id"`
	Name         string         `json:"name" validate:"required,min=2"`
	OwnerName    string         `json:"owner_name" validate:"required,min=2"`
	Email        string         `json:"email" validate:"required,email"`
	PhoneNumber  string         `json:"phone_number" validate:"required"`
	Address      datatypes.JSON `json:"address"`
	OpeningHours datatypes.JSON `json:"opening_hours"`
	SocialMedia  datatypes.JSON `json:"social_media,omitempty"`
	WebsiteURL   string         `json:"website_url,omitempty"`
	LogoURL      string         `json:"logo_url,omitempty"`
	BannerURL    string         `json:"banner_url" validate:"required,url"`
	About        string         `json:"about,omitempty"`
	Slogan       string         `json:"slogan,omitempty"`
	Since        int            `json:"since,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
