package Repository

import (
	"context"

	"Sanle/Models"
)

// Dashboard reports derived figures only: revenue is the sum of
// income-type expense entries and is never stored anywhere.
func (c *Coordinator) Dashboard(ctx context.Context) (DashboardStats, error) {
	trips := c.Docs.GetAll(ctx, "trips")
	services := c.Docs.GetAll(ctx, "services")
	expenses := c.Docs.GetAll(ctx, "expenses")

	if len(trips) > 0 || len(services) > 0 || len(expenses) > 0 {
		stats := DashboardStats{
			Trips:     len(trips),
			Drivers:   len(c.Docs.GetAll(ctx, "drivers")),
			Companies: len(c.Docs.GetAll(ctx, "companies")),
		}
		for _, e := range expenses {
			switch docString(e, "type") {
			case "income":
				stats.Revenue += docFloat(e, "amount")
			case "expense":
				stats.Expenses += docFloat(e, "amount")
			}
		}
		for _, s := range services {
			switch docString(s, "status") {
			case Models.ServicePending, Models.ServiceAccepted:
				stats.ActiveServices++
			}
		}
		return stats, nil
	}

	var stats DashboardStats

	var tripCount, driverCount, companyCount, activeCount int64
	if err := c.DB.Model(&Models.Trip{}).Count(&tripCount).Error; err != nil {
		return stats, err
	}
	if err := c.DB.Model(&Models.Driver{}).Count(&driverCount).Error; err != nil {
		return stats, err
	}
	if err := c.DB.Model(&Models.Company{}).Count(&companyCount).Error; err != nil {
		return stats, err
	}
	if err := c.DB.Model(&Models.Service{}).
		Where("status IN ?", []string{Models.ServicePending, Models.ServiceAccepted}).
		Count(&activeCount).Error; err != nil {
		return stats, err
	}

	var revenue, spent float64
	if err := c.DB.Model(&Models.Expense{}).
		Where("type = ?", "income").
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue).Error; err != nil {
		return stats, err
	}
	if err := c.DB.Model(&Models.Expense{}).
		Where("type = ?", "expense").
		Select("COALESCE(SUM(amount), 0)").Scan(&spent).Error; err != nil {
		return stats, err
	}

	stats.Trips = int(tripCount)
	stats.Drivers = int(driverCount)
	stats.Companies = int(companyCount)
	stats.ActiveServices = int(activeCount)
	stats.Revenue = revenue
	stats.Expenses = spent
	return stats, nil
}
