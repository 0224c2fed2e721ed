package repository

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/tasmimahana/cse470/internal/models"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

type DashboardStats struct {
	TotalUsers        int64   `json:"totalUsers"`
	TotalPets         int64   `json:"totalPets"`
	AvailablePets     int64   `json:"availablePets"`
	AdoptedPets       int64   `json:"adoptedPets"`
	PendingApprovals  int64   `json:"pendingApprovals"`
	TotalBookings     int64   `json:"totalBookings"`
	ActiveBookings    int64   `json:"activeBookings"`
	PendingBookings   int64   `json:"pendingBookings"`
	ConfirmedBookings int64   `json:"confirmedBookings"`
	TotalDonations    float64 `json:"totalDonations"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
}

type countQuery struct {
	dst   *int64
	model any
	where string
	args  []any
}

func (r *StatsGormRepository) Dashboard(ctx context.Context, now time.Time) (*DashboardStats, error) {
	var s DashboardStats
	db := r.db.WithContext(ctx)

	counts := []countQuery{
		{&s.TotalUsers, &models.User{}, "", nil},
		{&s.TotalPets, &models.Pet{}, "", nil},
		{&s.AvailablePets, &models.Pet{}, "status = ? AND approved = ?", []any{"available", true}},
		{&s.AdoptedPets, &models.Pet{}, "status = ?", []any{"adopted"}},
		{&s.PendingApprovals, &models.Pet{}, "approved = ?", []any{false}},
		{&s.TotalBookings, &models.Booking{}, "", nil},
		{&s.ActiveBookings, &models.Booking{}, "status IN ?", []any{[]string{"pending", "confirmed"}}},
		{&s.PendingBookings, &models.Booking{}, "status = ?", []any{"pending"}},
		{&s.ConfirmedBookings, &models.Booking{}, "status = ?", []any{"confirmed"}},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if c.where != "" {
			q = q.Where(c.where, c.args...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	total, err := r.sumSuccessful(db, time.Time{})
	if err != nil {
		return nil, err
	}
	s.TotalDonations = total

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthly, err := r.sumSuccessful(db, startOfMonth)
	if err != nil {
		return nil, err
	}
	s.MonthlyRevenue = monthly

	return &s, nil
}

func (r *StatsGormRepository) sumSuccessful(db *gorm.DB, since time.Time) (float64, error) {
	var total float64
	q := db.Model(&models.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_status = ?", "successful")
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}
	err := q.Scan(&total).Error
	return total, err
}

type DonationTotal struct {
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

type CauseTotal struct {
	Cause string  `json:"cause"`
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

type MonthTotal struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

type DonationStats struct {
	TotalDonations   DonationTotal `json:"totalDonations"`
	DonationsByCause []CauseTotal  `json:"donationsByCause"`
	MonthlyDonations []MonthTotal  `json:"monthlyDonations"`
}

const statsMonths = 12

// DonationStats aggregates successful donations. Months are bucketed in Go
// so the query stays portable across drivers.
func (r *StatsGormRepository) DonationStats(ctx context.Context) (*DonationStats, error) {
	db := r.db.WithContext(ctx)
	stats := &DonationStats{
		DonationsByCause: []CauseTotal{},
		MonthlyDonations: []MonthTotal{},
	}

	if err := db.Model(&models.Donation{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("payment_status = ?", "successful").
		Scan(&stats.TotalDonations).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Donation{}).
		Select("cause, SUM(amount) AS total, COUNT(*) AS count").
		Where("payment_status = ?", "successful").
		Group("cause").
		Order("total DESC").
		Scan(&stats.DonationsByCause).Error; err != nil {
		return nil, err
	}

	var rows []models.Donation
	if err := db.
		Select("amount", "created_at").
		Where("payment_status = ?", "successful").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	buckets := map[[2]int]*MonthTotal{}
	for _, d := range rows {
		k := [2]int{d.CreatedAt.Year(), int(d.CreatedAt.Month())}
		b, ok := buckets[k]
		if !ok {
			b = &MonthTotal{Year: k[0], Month: k[1]}
			buckets[k] = b
		}
		b.Total += d.Amount
		b.Count++
	}
	for _, b := range buckets {
		stats.MonthlyDonations = append(stats.MonthlyDonations, *b)
	}
	sort.Slice(stats.MonthlyDonations, func(i, j int) bool {
		a, b := stats.MonthlyDonations[i], stats.MonthlyDonations[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Month > b.Month
	})
	if len(stats.MonthlyDonations) > statsMonths {
		stats.MonthlyDonations = stats.MonthlyDonations[:statsMonths]
	}

	return stats, nil
}

type UserDashboard struct {
	Stats           UserStats         `json:"stats"`
	RecentPets      []models.Pet      `json:"recentPets"`
	RecentBookings  []models.Booking  `json:"recentBookings"`
	RecentDonations []models.Donation `json:"recentDonations"`
}

type UserStats struct {
	TotalPets           int     `json:"totalPets"`
	AvailablePets       int     `json:"availablePets"`
	AdoptedPets         int     `json:"adoptedPets"`
	TotalBookings       int64   `json:"totalBookings"`
	TotalDonations      int64   `json:"totalDonations"`
	TotalDonationAmount float64 `json:"totalDonationAmount"`
}

const recentLimit = 5

func (r *StatsGormRepository) UserDashboard(ctx context.Context, userID string) (*UserDashboard, error) {
	db := r.db.WithContext(ctx)
	out := &UserDashboard{}

	var pets []models.Pet
	if err := db.Where("added_by_id = ?", userID).Order("created_at DESC").Find(&pets).Error; err != nil {
		return nil, err
	}
	out.Stats.TotalPets = len(pets)
	for _, p := range pets {
		switch p.Status {
		case "available":
			out.Stats.AvailablePets++
		case "adopted":
			out.Stats.AdoptedPets++
		}
	}
	if len(pets) > recentLimit {
		pets = pets[:recentLimit]
	}
	out.RecentPets = pets

	if err := db.Model(&models.Booking{}).Where("user_id = ?", userID).Count(&out.Stats.TotalBookings).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Pet").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&out.RecentBookings).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Donation{}).Where("user_id = ?", userID).Count(&out.Stats.TotalDonations).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND payment_status = ?", userID, "successful").
		Scan(&out.Stats.TotalDonationAmount).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&out.RecentDonations).Error; err != nil {
		return nil, err
	}

	return out, nil
}
