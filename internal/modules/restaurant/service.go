package restaurant

import (
	"context"
	"encoding/json"
	"errors"

	"tablebook/internal/domain"
	"tablebook/internal/repository"
)

// RestaurantRepository — only the methods this service uses
type RestaurantRepository interface {
	Create(ctx context.Context, r *domain.Restaurant) error
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	GetByOwner(ctx context.Context, ownerID string) (*domain.Restaurant, error)
}

type Service struct {
	restaurants RestaurantRepository
}

func NewService(restaurants RestaurantRepository) *Service {
	return &Service{restaurants: restaurants}
}

// Create registers the caller's restaurant. One restaurant per owner
// account.
func (s *Service) Create(ctx context.Context, ownerID string, req AddRestaurantRequest) (*domain.Restaurant, error) {
	if _, err := s.restaurants.GetByOwner(ctx, ownerID); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	address, err := json.Marshal(req.Address)
	if err != nil {
		return nil, err
	}
	hours, err := json.Marshal(req.OpeningHours)
	if err != nil {
		return nil, err
	}
	var social []byte
	if req.SocialMedia != nil {
		social, err = json.Marshal(req.SocialMedia)
		if err != nil {
			return nil, err
		}
	}

	r := &domain.Restaurant{
		OwnerID:      ownerID,
		Name:         req.RestaurantName,
		OwnerName:    req.OwnerName,
		Email:        req.RestaurantEmail,
		PhoneNumber:  req.PhoneNumber,
		Address:      address,
		OpeningHours: hours,
		SocialMedia:  social,
		WebsiteURL:   req.WebsiteURL,
		LogoURL:      req.LogoURL,
		BannerURL:    req.BannerURL,
		About:        req.About,
		Slogan:       req.Slogan,
		Since:        req.Since,
	}

	if err := s.restaurants.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) GetByOwner(ctx context.Context, ownerID string) (*domain.Restaurant, error) {
	r, err := s.restaurants.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	r, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}
