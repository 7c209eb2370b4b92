package repository

import (
	"context"
	"errors"
	"time"

	"tablebook/internal/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

type restaurantModel struct {
	ID           string         `gorm:"column:id;primaryKey"`
	OwnerID      string         `gorm:"column:owner_id;uniqueIndex"`
	Name         string         `gorm:"column:name"`
	OwnerName    string         `gorm:"column:owner_name"`
	Email        string         `gorm:"column:email"`
	PhoneNumber  string         `gorm:"column:phone_number"`
	Address      datatypes.JSON `gorm:"column:address"`
	OpeningHours datatypes.JSON `gorm:"column:opening_hours"`
	SocialMedia  datatypes.JSON `gorm:"column:social_media"`
	WebsiteURL   *string        `gorm:"column:website_url"`
	LogoURL      *string        `gorm:"column:logo_url"`
	BannerURL    string         `gorm:"column:banner_url"`
	About        *string        `gorm:"column:about"`
	Slogan       *string        `gorm:"column:slogan"`
	Since        *int           `gorm:"column:since"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
}

func (restaurantModel) TableName() string { return "restaurants" }

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainRestaurant(m restaurantModel) *domain.Restaurant {
	var since int
	if m.Since != nil {
		since = *m.Since
	}
	return &domain.Restaurant{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Name:         m.Name,
		OwnerName:    m.OwnerName,
		Email:        m.Email,
		PhoneNumber:  m.PhoneNumber,
		Address:      m.Address,
		OpeningHours: m.OpeningHours,
		SocialMedia:  m.SocialMedia,
		WebsiteURL:   strVal(m.WebsiteURL),
		LogoURL:      strVal(m.LogoURL),
		BannerURL:    m.BannerURL,
		About:        strVal(m.About),
		Slogan:       strVal(m.Slogan),
		Since:        since,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, res *domain.Restaurant) error {
	var since *int
	if res.Since != 0 {
		v := res.Since
		since = &v
	}
	m := restaurantModel{
		ID:           uuid.NewString(),
		OwnerID:      res.OwnerID,
		Name:         res.Name,
		OwnerName:    res.OwnerName,
		Email:        res.Email,
		PhoneNumber:  res.PhoneNumber,
		Address:      res.Address,
		OpeningHours: res.OpeningHours,
		SocialMedia:  res.SocialMedia,
		WebsiteURL:   strPtr(res.WebsiteURL),
		LogoURL:      strPtr(res.LogoURL),
		BannerURL:    res.BannerURL,
		About:        strPtr(res.About),
		Slogan:       strPtr(res.Slogan),
		Since:        since,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainRestaurant(m)
	return nil
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	var m restaurantModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainRestaurant(m), nil
}

func (r *RestaurantRepository) GetByOwner(ctx context.Context, ownerID string) (*domain.Restaurant, error) {
	var m restaurantModel
	tx := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainRestaurant(m), nil
}

func (r *RestaurantRepository) Migrate() error {
	return r.db.AutoMigrate(&restaurantModel{})
}
