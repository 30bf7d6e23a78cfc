package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/Bayu-x3/Washify-Backend/config"
	"github.com/Bayu-x3/Washify-Backend/models"
)

type DashboardUser struct {
	Nama string `json:"nama"`
	Role string `json:"role"`
}

type RevenueSum struct {
	BiayaTambahan float64 `json:"biaya_tambahan"`
	Diskon        float64 `json:"diskon"`
	Pajak         float64 `json:"pajak"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DashboardStatistics struct {
	TransactionsToday        int64      `json:"transactions_today"`
	PercentTransactionsToday float64    `json:"percent_transactions_today"`
	RevenueToday             RevenueSum `json:"revenue_today"`
	PercentRevenueToday      float64    `json:"percent_revenue_today"`
	TotalMembers             int64      `json:"total_members"`
	PercentMembers           float64    `json:"percent_members"`
	TotalOutlets             int64      `json:"total_outlets"`
	PercentOutlets           float64    `json:"percent_outlets"`
}

type DashboardNotifications struct {
	PendingTransactions int64 `json:"pending_transactions"`
}

type DashboardData struct {
	User               DashboardUser          `json:"user"`
	Statistics         DashboardStatistics    `json:"statistics"`
	TransactionStatus  []StatusCount          `json:"transaction_status"`
	MostPopularPackage *models.Paket          `json:"most_popular_package"`
	TopMember          *models.Member         `json:"top_member"`
	Notifications      DashboardNotifications `json:"notifications"`
}

type DashboardService interface {
	GetDashboardData(nama, role string) (*DashboardData, error)
}

type dashboardService struct{}

func NewDashboardService() DashboardService {
	return &dashboardService{}
}

// PercentChange returns the period-over-period delta in percent. A zero
// baseline yields 0 rather than a division by zero.
func PercentChange(current, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (current - baseline) / baseline * 100
}

// startOfToday truncates now to local midnight.
func startOfToday(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (s *dashboardService) GetDashboardData(nama, role string) (*DashboardData, error) {
	db := config.DB

	now := time.Now()
	todayStart := startOfToday(now)
	// same day one calendar month back, not a fixed 30 days
	lastMonthStart := todayStart.AddDate(0, -1, 0)

	// transactions today vs same day last month
	var transactionsToday, transactionsLastMonth int64
	if err := db.Model(&models.Transaksi{}).
		Where("tgl >= ?", todayStart).
		Count(&transactionsToday).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Transaksi{}).
		Where("tgl >= ? AND tgl < ?", lastMonthStart, todayStart).
		Count(&transactionsLastMonth).Error; err != nil {
		return nil, err
	}

	// revenue: extra fee, discount and tax summed independently over paid
	// transactions whose payment date falls in the window
	revenueToday, err := s.sumRevenue(db, todayStart, nil)
	if err != nil {
		return nil, err
	}
	revenueLastMonth, err := s.sumRevenue(db, lastMonthStart, &todayStart)
	if err != nil {
		return nil, err
	}

	var totalMembers, membersLastMonth int64
	if err := db.Model(&models.Member{}).Count(&totalMembers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Member{}).
		Where("created_at < ?", lastMonthStart).
		Count(&membersLastMonth).Error; err != nil {
		return nil, err
	}

	var totalOutlets, outletsLastMonth int64
	if err := db.Model(&models.Outlet{}).Count(&totalOutlets).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Outlet{}).
		Where("created_at < ?", lastMonthStart).
		Count(&outletsLastMonth).Error; err != nil {
		return nil, err
	}

	// statuses with zero rows are simply absent from the result
	var statusCounts []StatusCount
	if err := db.Model(&models.Transaksi{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		return nil, err
	}

	popularPaket, err := s.mostPopularPaket(db)
	if err != nil {
		return nil, err
	}

	topMember, err := s.topMember(db)
	if err != nil {
		return nil, err
	}

	var pending int64
	if err := db.Model(&models.Transaksi{}).
		Where("dibayar = ?", "belum_dibayar").
		Count(&pending).Error; err != nil {
		return nil, err
	}

	return &DashboardData{
		User: DashboardUser{Nama: nama, Role: role},
		Statistics: DashboardStatistics{
			TransactionsToday:        transactionsToday,
			PercentTransactionsToday: PercentChange(float64(transactionsToday), float64(transactionsLastMonth)),
			RevenueToday:             revenueToday,
			PercentRevenueToday:      PercentChange(revenueToday.BiayaTambahan, revenueLastMonth.BiayaTambahan),
			TotalMembers:             totalMembers,
			PercentMembers:           PercentChange(float64(totalMembers), float64(membersLastMonth)),
			TotalOutlets:             totalOutlets,
			PercentOutlets:           PercentChange(float64(totalOutlets), float64(outletsLastMonth)),
		},
		TransactionStatus:  statusCounts,
		MostPopularPackage: popularPaket,
		TopMember:          topMember,
		Notifications:      DashboardNotifications{PendingTransactions: pending},
	}, nil
}

func (s *dashboardService) sumRevenue(db *gorm.DB, from time.Time, until *time.Time) (RevenueSum, error) {
	var sum RevenueSum

	query := db.Model(&models.Transaksi{}).
		Select("COALESCE(SUM(biaya_tambahan),0) as biaya_tambahan, COALESCE(SUM(diskon),0) as diskon, COALESCE(SUM(pajak),0) as pajak").
		Where("dibayar = ?", "dibayar").
		Where("tgl_bayar >= ?", from)

	if until != nil {
		query = query.Where("tgl_bayar < ?", *until)
	}

	if err := query.Scan(&sum).Error; err != nil {
		return RevenueSum{}, err
	}
	return sum, nil
}

// mostPopularPaket returns the package with the highest summed line quantity,
// ties broken by lowest id. Nil when there are no detail rows.
func (s *dashboardService) mostPopularPaket(db *gorm.DB) (*models.Paket, error) {
	var top struct {
		IDPaket uint
		Qty     int64
	}

	res := db.Model(&models.DetailTransaksi{}).
		Select("id_paket, SUM(qty) as qty").
		Group("id_paket").
		Order("qty DESC, id_paket ASC").
		Limit(1).
		Scan(&top)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var paket models.Paket
	if err := db.First(&paket, top.IDPaket).Error; err != nil {
		return nil, nil
	}
	return &paket, nil
}

// topMember returns the member with the most transactions, ties broken by
// lowest id. Nil when there are no transactions.
func (s *dashboardService) topMember(db *gorm.DB) (*models.Member, error) {
	var top struct {
		IDMember uint
		Count    int64
	}

	res := db.Model(&models.Transaksi{}).
		Select("id_member, COUNT(id) as count").
		Group("id_member").
		Order("count DESC, id_member ASC").
		Limit(1).
		Scan(&top)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var member models.Member
	if err := db.First(&member, top.IDMember).Error; err != nil {
		return nil, nil
	}
	return &member, nil
}
