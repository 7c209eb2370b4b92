package analytics

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"tablebook/internal/domain"
	"tablebook/internal/repository"
)

const dayFormat = "2006-01-02"

var ErrRestaurantNotFound = errors.New("restaurant not found")

// BookingStatsRepository — the aggregation reads this module needs.
type BookingStatsRepository interface {
	CountByStatusForRestaurant(ctx context.Context, restaurantID string, from, to time.Time) (map[domain.BookingStatus]int64, error)
	ListExecutedForRestaurant(ctx context.Context, restaurantID string, from, to time.Time) ([]repository.ExecutedSlice, error)
}

type RestaurantDirectory interface {
	GetByOwner(ctx context.Context, ownerID string) (*domain.Restaurant, error)
}

type Service struct {
	bookings    BookingStatsRepository
	restaurants RestaurantDirectory
}

func NewService(bookings BookingStatsRepository, restaurants RestaurantDirectory) *Service {
	return &Service{bookings: bookings, restaurants: restaurants}
}

func (s *Service) restaurantFor(ctx context.Context, ownerID string) (*domain.Restaurant, error) {
	r, err := s.restaurants.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return r, nil
}

// DailySales aggregates executed bookings per day with a meal-category
// breakdown over [from, to].
func (s *Service) DailySales(ctx context.Context, ownerID string, from, to time.Time) ([]DailySalesRow, error) {
	r, err := s.restaurantFor(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	slices, err := s.bookings.ListExecutedForRestaurant(ctx, r.ID, from, to)
	if err != nil {
		return nil, err
	}

	type dayAgg struct {
		bookings   int64
		guests     int64
		byCategory map[domain.MealCategory]*CategorySlice
	}

	days := make(map[string]*dayAgg)
	for _, sl := range slices {
		key := sl.BookingAt.UTC().Format(dayFormat)
		agg, ok := days[key]
		if !ok {
			agg = &dayAgg{byCategory: make(map[domain.MealCategory]*CategorySlice)}
			days[key] = agg
		}
		agg.bookings++
		agg.guests += int64(sl.NumberOfGuests)

		cat, ok := agg.byCategory[sl.Category]
		if !ok {
			cat = &CategorySlice{}
			agg.byCategory[sl.Category] = cat
		}
		cat.Bookings++
		cat.Guests += int64(sl.NumberOfGuests)
	}

	out := make([]DailySalesRow, 0, len(days))
	for date, agg := range days {
		out = append(out, DailySalesRow{
			Date:      date,
			Bookings:  agg.bookings,
			Guests:    agg.guests,
			Breakfast: agg.byCategory[domain.CategoryBreakfast],
			Lunch:     agg.byCategory[domain.CategoryLunch],
			Dinner:    agg.byCategory[domain.CategoryDinner],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// Funnel counts bookings created in [from, to] by status and derives
// stage conversion percentages.
func (s *Service) Funnel(ctx context.Context, ownerID string, from, to time.Time) (*FunnelReport, error) {
	r, err := s.restaurantFor(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.bookings.CountByStatusForRestaurant(ctx, r.ID, from, to)
	if err != nil {
		return nil, err
	}

	counts := FunnelCounts{
		Pending:        byStatus[domain.BookingPending],
		Accepted:       byStatus[domain.BookingAccepted],
		PaymentPending: byStatus[domain.BookingPaymentPending],
		Confirmed:      byStatus[domain.BookingConfirmed],
		Executed:       byStatus[domain.BookingExecuted],
		Rejected:       byStatus[domain.BookingRejected],
	}

	totalPipeline := counts.Pending + counts.Accepted + counts.PaymentPending + counts.Confirmed
	return &FunnelReport{
		Counts: counts,
		Conversions: FunnelConversions{
			PendingToConfirmed:  pct(counts.Confirmed, counts.Pending),
			ConfirmedToExecuted: pct(counts.Executed, counts.Confirmed),
			OverallToExecuted:   pct(counts.Executed, totalPipeline),
		},
	}, nil
}

// Forecast projects guest volume for the next horizon days from a
// weekday profile of the trailing 120 days of executed bookings.
func (s *Service) Forecast(ctx context.Context, ownerID string, horizon int) ([]ForecastDay, error) {
	r, err := s.restaurantFor(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -120)

	slices, err := s.bookings.ListExecutedForRestaurant(ctx, r.ID, from, to)
	if err != nil {
		return nil, err
	}

	guestsPerDay := make(map[string]int64)
	for _, sl := range slices {
		guestsPerDay[sl.BookingAt.UTC().Format(dayFormat)] += int64(sl.NumberOfGuests)
	}

	var weekdayTotals, weekdayCounts [7]int64
	for date, guests := range guestsPerDay {
		d, err := time.Parse(dayFormat, date)
		if err != nil {
			continue
		}
		w := int(d.Weekday())
		weekdayTotals[w] += guests
		weekdayCounts[w]++
	}

	var weekdayAvg [7]int64
	var globalTotal, globalDays int64
	for w := 0; w < 7; w++ {
		if weekdayCounts[w] > 0 {
			weekdayAvg[w] = int64(math.Round(float64(weekdayTotals[w]) / float64(weekdayCounts[w])))
			globalTotal += weekdayTotals[w]
			globalDays += weekdayCounts[w]
		}
	}
	var globalAvg int64
	if globalDays > 0 {
		globalAvg = int64(math.Round(float64(globalTotal) / float64(globalDays)))
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	out := make([]ForecastDay, 0, horizon)
	for i := 1; i <= horizon; i++ {
		d := today.AddDate(0, 0, i)
		guests := weekdayAvg[int(d.Weekday())]
		if guests == 0 {
			guests = globalAvg
		}
		out = append(out, ForecastDay{Day: i, Date: d.Format(dayFormat), Guests: guests})
	}
	return out, nil
}

func pct(n, d int64) float64 {
	if d <= 0 {
		return 0
	}
	return math.Round(float64(n)/float64(d)*1000) / 10
}
