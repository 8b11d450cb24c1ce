package services

import (
	"sort"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

const (
	topMenuItemsLimit = 10
	topTablesLimit    = 10
	peakHoursLimit    = 3
)

// ReportPeriod is a half-open date window [Start, End).
type ReportPeriod struct {
	Start time.Time
	End   time.Time
}

// Previous returns the immediately preceding window of equal length,
// used as the baseline for growth metrics.
func (p ReportPeriod) Previous() ReportPeriod {
	length := p.End.Sub(p.Start)
	return ReportPeriod{Start: p.Start.Add(-length), End: p.Start}
}

// DailyRevenue is revenue summed for one UTC calendar day.
type DailyRevenue struct {
	Day     string // "2006-01-02"
	Revenue kernel.Money
}

// HourlyCount is an order count for one hour of day (0-23).
type HourlyCount struct {
	Hour   int
	Orders int
}

// MenuItemPerformance aggregates one menu item's sales in the window.
type MenuItemPerformance struct {
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
	Revenue    kernel.Money
	Orders     int
}

// CategoryPerformance aggregates one menu category's sales in the window.
type CategoryPerformance struct {
	Category string
	Quantity int
	Revenue  kernel.Money
	Orders   int
}

// TablePerformance aggregates one table's orders in the window.
type TablePerformance struct {
	TableID           kernel.UUID
	Orders            int
	Revenue           kernel.Money
	AverageOrderValue kernel.Money
}

// Report is the full metrics bundle for one restaurant and window.
type Report struct {
	Period ReportPeriod

	TotalOrders       int
	TotalRevenue      kernel.Money
	AverageOrderValue kernel.Money
	OrdersByStatus    map[order.Status]int

	DailyRevenue []DailyRevenue
	HourlyOrders []HourlyCount
	PeakHours    []HourlyCount

	TopMenuItems        []MenuItemPerformance
	CategoryPerformance []CategoryPerformance
	TablePerformance    []TablePerformance

	UniqueCustomers       int
	RepeatCustomers       int
	CustomerRetentionRate float64

	CompletionRate     float64
	CancellationRate   float64
	AveragePrepMinutes float64

	RevenueGrowth float64
	OrderGrowth   float64
}

// ReportAggregator computes the owner's business metrics. Every metric is a
// pure function of the orders loaded for the window (and, for growth, the
// preceding window); the aggregator never touches storage.
type ReportAggregator struct{}

// NewReportAggregator creates a new ReportAggregator instance.
func NewReportAggregator() ReportAggregator {
	return ReportAggregator{}
}

// Aggregate computes the report for the given window. current holds the
// orders created inside period; previous holds the orders of the equal-length
// window immediately before it, used only for the growth metrics.
//
// Item-level aggregations (menu, category) skip CANCELLED items, matching
// how order totals are derived.
func (a ReportAggregator) Aggregate(period ReportPeriod, current, previous []*order.Order) Report {
	report := Report{
		Period:         period,
		TotalOrders:    len(current),
		OrdersByStatus: make(map[order.Status]int),
	}

	dailyCents := make(map[string]int64)
	hourlyCounts := make(map[int]int)
	deliveredCount := 0
	cancelledCount := 0
	var prepMinutes float64

	tables := make(map[kernel.UUID]*tableAgg)

	for _, o := range current {
		total := o.Total()
		report.TotalRevenue = report.TotalRevenue.Add(total)
		report.OrdersByStatus[o.Status()]++

		createdUTC := o.CreatedAt().UTC()
		dailyCents[createdUTC.Format("2006-01-02")] += total.Cents()
		hourlyCounts[createdUTC.Hour()]++

		agg, ok := tables[o.TableID()]
		if !ok {
			agg = &tableAgg{}
			tables[o.TableID()] = agg
		}
		agg.orders++
		agg.cents += total.Cents()

		switch o.Status() {
		case order.Delivered:
			deliveredCount++
			prepMinutes += o.UpdatedAt().Sub(o.CreatedAt()).Minutes()
		case order.Cancelled:
			cancelledCount++
		}
	}

	if report.TotalOrders > 0 {
		avg, _ := kernel.NewMoneyFromCents(report.TotalRevenue.Cents() / int64(report.TotalOrders))
		report.AverageOrderValue = avg
		report.CompletionRate = float64(deliveredCount) / float64(report.TotalOrders) * 100
		report.CancellationRate = float64(cancelledCount) / float64(report.TotalOrders) * 100
	}
	if deliveredCount > 0 {
		report.AveragePrepMinutes = prepMinutes / float64(deliveredCount)
	}

	report.DailyRevenue = sortedDailyRevenue(dailyCents)
	report.HourlyOrders = sortedHourlyCounts(hourlyCounts)
	report.PeakHours = peakHours(report.HourlyOrders)
	report.TopMenuItems = menuItemPerformance(current)
	report.CategoryPerformance = categoryPerformance(current)
	report.TablePerformance = tablePerformance(tables)

	report.UniqueCustomers = len(tables)
	for _, agg := range tables {
		if agg.orders > 1 {
			report.RepeatCustomers++
		}
	}
	if report.UniqueCustomers > 0 {
		report.CustomerRetentionRate =
			float64(report.RepeatCustomers) / float64(report.UniqueCustomers) * 100
	}

	var previousCents int64
	for _, o := range previous {
		previousCents += o.Total().Cents()
	}
	report.RevenueGrowth = growth(float64(report.TotalRevenue.Cents()), float64(previousCents))
	report.OrderGrowth = growth(float64(len(current)), float64(len(previous)))

	return report
}

// growth returns the percentage change from previous to current. When the
// baseline is zero the result is 100 for any growth and 0 otherwise.
func growth(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

func sortedDailyRevenue(dailyCents map[string]int64) []DailyRevenue {
	days := make([]string, 0, len(dailyCents))
	for day := range dailyCents {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]DailyRevenue, 0, len(days))
	for _, day := range days {
		revenue, _ := kernel.NewMoneyFromCents(dailyCents[day])
		result = append(result, DailyRevenue{Day: day, Revenue: revenue})
	}
	return result
}

func sortedHourlyCounts(hourlyCounts map[int]int) []HourlyCount {
	result := make([]HourlyCount, 0, len(hourlyCounts))
	for hour, count := range hourlyCounts {
		result = append(result, HourlyCount{Hour: hour, Orders: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Hour < result[j].Hour })
	return result
}

func peakHours(hourly []HourlyCount) []HourlyCount {
	peaks := make([]HourlyCount, len(hourly))
	copy(peaks, hourly)
	sort.SliceStable(peaks, func(i, j int) bool {
		if peaks[i].Orders != peaks[j].Orders {
			return peaks[i].Orders > peaks[j].Orders
		}
		return peaks[i].Hour < peaks[j].Hour
	})

	if len(peaks) > peakHoursLimit {
		peaks = peaks[:peakHoursLimit]
	}
	return peaks
}

func menuItemPerformance(orders []*order.Order) []MenuItemPerformance {
	byMenuItem := make(map[kernel.UUID]*MenuItemPerformance)

	for _, o := range orders {
		seen := make(map[kernel.UUID]bool)
		for _, item := range o.Items() {
			if item.Status() == order.ItemCancelled {
				continue
			}

			perf, ok := byMenuItem[item.MenuItemID()]
			if !ok {
				perf = &MenuItemPerformance{MenuItemID: item.MenuItemID(), Name: item.Name()}
				byMenuItem[item.MenuItemID()] = perf
			}

			perf.Quantity += item.Quantity()
			perf.Revenue = perf.Revenue.Add(item.LineTotal())
			if !seen[item.MenuItemID()] {
				perf.Orders++
				seen[item.MenuItemID()] = true
			}
		}
	}

	result := make([]MenuItemPerformance, 0, len(byMenuItem))
	for _, perf := range byMenuItem {
		result = append(result, *perf)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Revenue.Cents() != result[j].Revenue.Cents() {
			return result[i].Revenue.Cents() > result[j].Revenue.Cents()
		}
		return result[i].Name < result[j].Name
	})

	if len(result) > topMenuItemsLimit {
		result = result[:topMenuItemsLimit]
	}
	return result
}

func categoryPerformance(orders []*order.Order) []CategoryPerformance {
	byCategory := make(map[string]*CategoryPerformance)

	for _, o := range orders {
		seen := make(map[string]bool)
		for _, item := range o.Items() {
			if item.Status() == order.ItemCancelled {
				continue
			}

			perf, ok := byCategory[item.Category()]
			if !ok {
				perf = &CategoryPerformance{Category: item.Category()}
				byCategory[item.Category()] = perf
			}

			perf.Quantity += item.Quantity()
			perf.Revenue = perf.Revenue.Add(item.LineTotal())
			if !seen[item.Category()] {
				perf.Orders++
				seen[item.Category()] = true
			}
		}
	}

	result := make([]CategoryPerformance, 0, len(byCategory))
	for _, perf := range byCategory {
		result = append(result, *perf)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Revenue.Cents() != result[j].Revenue.Cents() {
			return result[i].Revenue.Cents() > result[j].Revenue.Cents()
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// tableAgg accumulates per-table order counts and revenue cents.
type tableAgg struct {
	orders int
	cents  int64
}

func tablePerformance(tables map[kernel.UUID]*tableAgg) []TablePerformance {
	result := make([]TablePerformance, 0, len(tables))
	for tableID, agg := range tables {
		revenue, _ := kernel.NewMoneyFromCents(agg.cents)
		avg, _ := kernel.NewMoneyFromCents(agg.cents / int64(agg.orders))
		result = append(result, TablePerformance{
			TableID:           tableID,
			Orders:            agg.orders,
			Revenue:           revenue,
			AverageOrderValue: avg,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Revenue.Cents() != result[j].Revenue.Cents() {
			return result[i].Revenue.Cents() > result[j].Revenue.Cents()
		}
		return result[i].TableID.String() < result[j].TableID.String()
	})

	if len(result) > topTablesLimit {
		result = result[:topTablesLimit]
	}
	return result
}
