package service

import (
	"time"

	"hotel-portal/portal-svc/internal/domain"
)

// IsOverdue reports an unpaid bill older than one calendar month.
func IsOverdue(bill domain.Bill, now time.Time) bool {
	if bill.IsPaid() {
		return false
	}
	created := bill.CreatedAt.Time
	if created.IsZero() {
		created = bill.BillDate.Time
	}
	if created.IsZero() {
		return false
	}
	return now.After(created.AddDate(0, 1, 0))
}
