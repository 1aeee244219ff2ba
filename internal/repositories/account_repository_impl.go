package repositories

import (
	"strings"
	"time"

	"insights/internal/models"

	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

const insertBatchSize = 500

func (r *accountRepository) ReplaceAll(accounts []models.Account, invalid []models.InvalidRow) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Account{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.InvalidRow{}).Error; err != nil {
			return err
		}
		if len(accounts) > 0 {
			if err := tx.CreateInBatches(accounts, insertBatchSize).Error; err != nil {
				return err
			}
		}
		if len(invalid) > 0 {
			if err := tx.CreateInBatches(invalid, insertBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *accountRepository) All() ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Order("id").Find(&accounts).Error
	return accounts, err
}

func (r *accountRepository) List(filter AccountFilter, offset, limit int) ([]models.Account, int64, error) {
	q := r.db.Model(&models.Account{})

	if filter.SubscriptionStatus != "" {
		q = q.Where("subscription_status = ?", filter.SubscriptionStatus)
	}
	if filter.MinHealth != nil {
		q = q.Where("health_score >= ?", *filter.MinHealth)
	}
	if filter.Search != "" {
		q = q.Where("LOWER(account_label) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var accounts []models.Account
	err := q.Order("id").Offset(offset).Limit(limit).Find(&accounts).Error
	return accounts, total, err
}

func (r *accountRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Account{}).Count(&count).Error
	return count, err
}

func (r *accountRepository) InvalidRows() ([]models.InvalidRow, error) {
	var rows []models.InvalidRow
	err := r.db.Order("row_number").Find(&rows).Error
	return rows, err
}

func (r *accountRepository) CountInvalid() (int64, error) {
	var count int64
	err := r.db.Model(&models.InvalidRow{}).Count(&count).Error
	return count, err
}

func (r *accountRepository) SummaryStats() (*SummaryStats, error) {
	var stats SummaryStats
	err := r.db.Model(&models.Account{}).
		Select(`COUNT(*) AS total_accounts,
			COALESCE(SUM(CASE WHEN subscription_status = 'active' THEN 1 ELSE 0 END), 0) AS active_accounts,
			COALESCE(SUM(CASE WHEN subscription_status = 'inactive' THEN 1 ELSE 0 END), 0) AS inactive_accounts,
			COALESCE(SUM(notifications_billed), 0) AS total_notifications_billed,
			COALESCE(SUM(messages_processed), 0) AS total_messages_processed,
			COALESCE(AVG(health_score), 0) AS avg_health_score,
			COALESCE(SUM(CASE WHEN churn_risk = 'at_risk' THEN 1 ELSE 0 END), 0) AS at_risk_accounts,
			COALESCE(SUM(CASE WHEN churn_risk = 'churned' THEN 1 ELSE 0 END), 0) AS churned_accounts`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *accountRepository) CountByChurnRisk() ([]ChurnBucketCount, error) {
	var rows []ChurnBucketCount
	err := r.db.Model(&models.Account{}).
		Select("churn_risk, COUNT(*) AS count").
		Group("churn_risk").
		Scan(&rows).Error
	return rows, err
}

func (r *accountRepository) BilledByChurnRisk() ([]ChurnBucketTotal, error) {
	var rows []ChurnBucketTotal
	err := r.db.Model(&models.Account{}).
		Select("churn_risk, COALESCE(SUM(notifications_billed), 0) AS total").
		Group("churn_risk").
		Scan(&rows).Error
	return rows, err
}

func (r *accountRepository) BilledByReportDate(start, end *time.Time) ([]DateTotal, error) {
	q := r.db.Model(&models.Account{})
	if start != nil {
		q = q.Where("report_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("report_date <= ?", *end)
	}

	var rows []DateTotal
	err := q.Select("report_date, COALESCE(SUM(notifications_billed), 0) AS total").
		Group("report_date").
		Order("report_date").
		Scan(&rows).Error
	return rows, err
}

func (r *accountRepository) ReportDateBounds() (time.Time, time.Time, bool, error) {
	var bounds struct {
		MinDate *time.Time
		MaxDate *time.Time
	}
	err := r.db.Model(&models.Account{}).
		Select("MIN(report_date) AS min_date, MAX(report_date) AS max_date").
		Scan(&bounds).Error
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	if bounds.MinDate == nil || bounds.MaxDate == nil {
		return time.Time{}, time.Time{}, false, nil
	}
	return *bounds.MinDate, *bounds.MaxDate, true, nil
}
