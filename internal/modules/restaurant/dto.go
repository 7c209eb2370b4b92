package restaurant

type AddressDTO struct {
	Line1   string `json:"line1" binding:"required" validate:"required,min=3"`
	Line2   string `json:"line2" binding:"required" validate:"required,min=3"`
	Line3   string `json:"line3,omitempty"`
	Zip     string `json:"zip" binding:"required" validate:"required"`
	City    string `json:"city" binding:"required" validate:"required,min=2"`
	State   string `json:"state" binding:"required" validate:"required,min=2"`
	Country string `json:"country" binding:"required" validate:"required,min=2"`
}

type HoursRangeDTO struct {
	Start string `json:"start" binding:"required" validate:"required"`
	End   string `json:"end" binding:"required" validate:"required"`
}

type OpeningHoursDTO struct {
	Weekday HoursRangeDTO `json:"weekday" binding:"required"`
	Weekend HoursRangeDTO `json:"weekend" binding:"required"`
}

type SocialMediaDTO struct {
	Facebook  string `json:"facebook,omitempty" validate:"omitempty,url"`
	Twitter   string `json:"twitter,omitempty" validate:"omitempty,url"`
	Instagram string `json:"instagram,omitempty" validate:"omitempty,url"`
}

type AddRestaurantRequest struct {
	RestaurantName  string          `json:"restaurantName" binding:"required" validate:"required,min=2"`
	Address         AddressDTO      `json:"address" binding:"required"`
	OwnerName       string          `json:"ownerName" binding:"required" validate:"required,min=2"`
	PhoneNumber     string          `json:"phoneNumber" binding:"required" validate:"required"`
	RestaurantEmail string          `json:"restaurantEmail" binding:"required,email" validate:"required,email"`
	WebsiteURL      string          `json:"websiteURL,omitempty" validate:"omitempty,url"`
	SocialMedia     *SocialMediaDTO `json:"socialMedia,omitempty"`
	OpeningHours    OpeningHoursDTO `json:"openingHours" binding:"required"`
	LogoURL         string          `json:"logoURL,omitempty" validate:"omitempty,url"`
	BannerURL       string          `json:"bannerURL" binding:"required" validate:"required,url"`
	About           string          `json:"about,omitempty" validate:"omitempty,min=10"`
	Since           int             `json:"since,omitempty"`
	Slogan          string          `json:"slogan,omitempty" validate:"omitempty,min=5"`
}
