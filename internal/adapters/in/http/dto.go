package http

import (
	"time"

	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/services"
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is one requested line in a place-order or add-items call.
type OrderLineRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	TableID      string             `json:"table_id"`
	CustomerNote string             `json:"customer_note,omitempty"`
	Items        []OrderLineRequest `json:"items"`
}

// AddItemsRequest is the body of POST /api/v1/orders/:id/items.
type AddItemsRequest struct {
	Items []OrderLineRequest `json:"items"`
}

// UpdateItemStatusRequest is the body of PATCH /api/v1/order-items/:id/status.
type UpdateItemStatusRequest struct {
	Status string `json:"status"`
}

// CreateTableRequest is the body of POST /api/v1/tables.
type CreateTableRequest struct {
	Label string `json:"label"`
}

// CreateMenuItemRequest is the body of POST /api/v1/menu-items.
type CreateMenuItemRequest struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price_cents"`
}

// OrderItemResponse is one order line in an order representation.
type OrderItemResponse struct {
	ID             string `json:"id"`
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	PriceCents     int64  `json:"price_cents"`
	Quantity       int    `json:"quantity"`
	Status         string `json:"status"`
	AddedInBatch   int    `json:"added_in_batch"`
	Notes          string `json:"notes,omitempty"`
	LineTotalCents int64  `json:"line_total_cents"`
}

// OrderResponse is the full order representation.
type OrderResponse struct {
	ID           string              `json:"id"`
	TableID      string              `json:"table_id"`
	Status       string              `json:"status"`
	CustomerNote string              `json:"customer_note,omitempty"`
	TotalCents   int64               `json:"total_cents"`
	Total        string              `json:"total"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Items        []OrderItemResponse `json:"items"`
}

// AddItemsResponse is the body returned by POST /api/v1/orders/:id/items.
type AddItemsResponse struct {
	Batch int           `json:"batch"`
	Order OrderResponse `json:"order"`
}

// UpdateItemStatusResponse is the body returned by
// PATCH /api/v1/order-items/:id/status.
type UpdateItemStatusResponse struct {
	Item  OrderItemResponse `json:"item"`
	Order OrderResponse     `json:"order"`
}

// TableResponse is the representation of a dining table.
type TableResponse struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// MenuItemResponse is the representation of a menu item.
type MenuItemResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price_cents"`
	Price      string `json:"price"`
	Available  bool   `json:"available"`
}

// Kitchen queue representations mirror the domain queue builder output.
type (
	QueueItemResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
		Status   string `json:"status"`
		Notes    string `json:"notes,omitempty"`
	}

	QueueBatchResponse struct {
		Number int                 `json:"number"`
		Label  string              `json:"label"`
		Items  []QueueItemResponse `json:"items"`
	}

	QueueOrderResponse struct {
		OrderID           string               `json:"order_id"`
		TableID           string               `json:"table_id"`
		Status            string               `json:"status"`
		CustomerNote      string               `json:"customer_note,omitempty"`
		CreatedAt         time.Time            `json:"created_at"`
		AgeMinutes        int                  `json:"age_minutes"`
		Priority          string               `json:"priority"`
		TotalItems        int                  `json:"total_items"`
		PendingCount      int                  `json:"pending_count"`
		PreparingCount    int                  `json:"preparing_count"`
		ReadyCount        int                  `json:"ready_count"`
		CompletionPercent float64              `json:"completion_percent"`
		Batches           []QueueBatchResponse `json:"batches"`
	}

	QueueSummaryResponse struct {
		ActiveOrders   int `json:"active_orders"`
		ActiveItems    int `json:"active_items"`
		PendingItems   int `json:"pending_items"`
		PreparingItems int `json:"preparing_items"`
		ReadyItems     int `json:"ready_items"`
		UrgentOrders   int `json:"urgent_orders"`
		ReopenedOrders int `json:"reopened_orders"`
	}

	KitchenQueueResponse struct {
		Orders  []QueueOrderResponse `json:"orders"`
		Summary QueueSummaryResponse `json:"summary"`
	}
)

// Report representations mirror the domain report aggregator output.
type (
	DailyRevenueResponse struct {
		Day          string `json:"day"`
		RevenueCents int64  `json:"revenue_cents"`
	}

	HourlyCountResponse struct {
		Hour   int `json:"hour"`
		Orders int `json:"orders"`
	}

	MenuItemPerformanceResponse struct {
		MenuItemID   string `json:"menu_item_id"`
		Name         string `json:"name"`
		Quantity     int    `json:"quantity"`
		RevenueCents int64  `json:"revenue_cents"`
		Orders       int    `json:"orders"`
	}

	CategoryPerformanceResponse struct {
		Category     string `json:"category"`
		Quantity     int    `json:"quantity"`
		RevenueCents int64  `json:"revenue_cents"`
		Orders       int    `json:"orders"`
	}

	TablePerformanceResponse struct {
		TableID                string `json:"table_id"`
		Orders                 int    `json:"orders"`
		RevenueCents           int64  `json:"revenue_cents"`
		AverageOrderValueCents int64  `json:"average_order_value_cents"`
	}

	ReportResponse struct {
		PeriodStart time.Time `json:"period_start"`
		PeriodEnd   time.Time `json:"period_end"`

		TotalOrders            int            `json:"total_orders"`
		TotalRevenueCents      int64          `json:"total_revenue_cents"`
		AverageOrderValueCents int64          `json:"average_order_value_cents"`
		OrdersByStatus         map[string]int `json:"orders_by_status"`

		DailyRevenue []DailyRevenueResponse `json:"daily_revenue"`
		HourlyOrders []HourlyCountResponse  `json:"hourly_orders"`
		PeakHours    []HourlyCountResponse  `json:"peak_hours"`

		TopMenuItems        []MenuItemPerformanceResponse `json:"top_menu_items"`
		CategoryPerformance []CategoryPerformanceResponse `json:"category_performance"`
		TablePerformance    []TablePerformanceResponse    `json:"table_performance"`

		UniqueCustomers       int     `json:"unique_customers"`
		RepeatCustomers       int     `json:"repeat_customers"`
		CustomerRetentionRate float64 `json:"customer_retention_rate"`

		CompletionRate     float64 `json:"completion_rate"`
		CancellationRate   float64 `json:"cancellation_rate"`
		AveragePrepMinutes float64 `json:"average_prep_minutes"`

		RevenueGrowth float64 `json:"revenue_growth"`
		OrderGrowth   float64 `json:"order_growth"`
	}
)

func orderItemToResponse(item *order.Item) OrderItemResponse {
	return OrderItemResponse{
		ID:             item.ID().String(),
		MenuItemID:     item.MenuItemID().String(),
		Name:           item.Name(),
		Category:       item.Category(),
		PriceCents:     item.Price().Cents(),
		Quantity:       item.Quantity(),
		Status:         item.Status().String(),
		AddedInBatch:   item.AddedInBatch(),
		Notes:          item.Notes(),
		LineTotalCents: item.LineTotal().Cents(),
	}
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, orderItemToResponse(item))
	}

	return OrderResponse{
		ID:           aggregate.ID().String(),
		TableID:      aggregate.TableID().String(),
		Status:       aggregate.Status().String(),
		CustomerNote: aggregate.CustomerNote(),
		TotalCents:   aggregate.Total().Cents(),
		Total:        aggregate.Total().String(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Items:        items,
	}
}

func menuToResponse(items []queries.GetMenuQueryResponse) []MenuItemResponse {
	response := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, MenuItemResponse{
			ID:         item.ID.String(),
			Name:       item.Name,
			Category:   item.Category,
			PriceCents: item.Price.Cents(),
			Price:      item.Price.String(),
			Available:  item.Available,
		})
	}
	return response
}

func queueToResponse(queue services.KitchenQueue) KitchenQueueResponse {
	orders := make([]QueueOrderResponse, 0, len(queue.Orders))
	for _, queueOrder := range queue.Orders {
		batches := make([]QueueBatchResponse, 0, len(queueOrder.Batches))
		for _, batch := range queueOrder.Batches {
			items := make([]QueueItemResponse, 0, len(batch.Items))
			for _, item := range batch.Items {
				items = append(items, QueueItemResponse{
					ID:       item.ID.String(),
					Name:     item.Name,
					Quantity: item.Quantity,
					Status:   item.Status.String(),
					Notes:    item.Notes,
				})
			}
			batches = append(batches, QueueBatchResponse{
				Number: batch.Number,
				Label:  batch.Label,
				Items:  items,
			})
		}

		orders = append(orders, QueueOrderResponse{
			OrderID:           queueOrder.OrderID.String(),
			TableID:           queueOrder.TableID.String(),
			Status:            queueOrder.Status.String(),
			CustomerNote:      queueOrder.CustomerNote,
			CreatedAt:         queueOrder.CreatedAt,
			AgeMinutes:        queueOrder.AgeMinutes,
			Priority:          queueOrder.Priority.String(),
			TotalItems:        queueOrder.TotalItems,
			PendingCount:      queueOrder.PendingCount,
			PreparingCount:    queueOrder.PreparingCount,
			ReadyCount:        queueOrder.ReadyCount,
			CompletionPercent: queueOrder.CompletionPercent,
			Batches:           batches,
		})
	}

	return KitchenQueueResponse{
		Orders: orders,
		Summary: QueueSummaryResponse{
			ActiveOrders:   queue.Summary.ActiveOrders,
			ActiveItems:    queue.Summary.ActiveItems,
			PendingItems:   queue.Summary.PendingItems,
			PreparingItems: queue.Summary.PreparingItems,
			ReadyItems:     queue.Summary.ReadyItems,
			UrgentOrders:   queue.Summary.UrgentOrders,
			ReopenedOrders: queue.Summary.ReopenedOrders,
		},
	}
}

func reportToResponse(report services.Report) ReportResponse {
	byStatus := make(map[string]int, len(report.OrdersByStatus))
	for status, count := range report.OrdersByStatus {
		byStatus[status.String()] = count
	}

	daily := make([]DailyRevenueResponse, 0, len(report.DailyRevenue))
	for _, day := range report.DailyRevenue {
		daily = append(daily, DailyRevenueResponse{
			Day:          day.Day,
			RevenueCents: day.Revenue.Cents(),
		})
	}

	topItems := make([]MenuItemPerformanceResponse, 0, len(report.TopMenuItems))
	for _, item := range report.TopMenuItems {
		topItems = append(topItems, MenuItemPerformanceResponse{
			MenuItemID:   item.MenuItemID.String(),
			Name:         item.Name,
			Quantity:     item.Quantity,
			RevenueCents: item.Revenue.Cents(),
			Orders:       item.Orders,
		})
	}

	categories := make([]CategoryPerformanceResponse, 0, len(report.CategoryPerformance))
	for _, category := range report.CategoryPerformance {
		categories = append(categories, CategoryPerformanceResponse{
			Category:     category.Category,
			Quantity:     category.Quantity,
			RevenueCents: category.Revenue.Cents(),
			Orders:       category.Orders,
		})
	}

	tables := make([]TablePerformanceResponse, 0, len(report.TablePerformance))
	for _, tablePerf := range report.TablePerformance {
		tables = append(tables, TablePerformanceResponse{
			TableID:                tablePerf.TableID.String(),
			Orders:                 tablePerf.Orders,
			RevenueCents:           tablePerf.Revenue.Cents(),
			AverageOrderValueCents: tablePerf.AverageOrderValue.Cents(),
		})
	}

	return ReportResponse{
		PeriodStart:            report.Period.Start,
		PeriodEnd:              report.Period.End,
		TotalOrders:            report.TotalOrders,
		TotalRevenueCents:      report.TotalRevenue.Cents(),
		AverageOrderValueCents: report.AverageOrderValue.Cents(),
		OrdersByStatus:         byStatus,
		DailyRevenue:           daily,
		HourlyOrders:           hourlyToResponse(report.HourlyOrders),
		PeakHours:              hourlyToResponse(report.PeakHours),
		TopMenuItems:           topItems,
		CategoryPerformance:    categories,
		TablePerformance:       tables,
		UniqueCustomers:        report.UniqueCustomers,
		RepeatCustomers:        report.RepeatCustomers,
		CustomerRetentionRate:  report.CustomerRetentionRate,
		CompletionRate:         report.CompletionRate,
		CancellationRate:       report.CancellationRate,
		AveragePrepMinutes:     report.AveragePrepMinutes,
		RevenueGrowth:          report.RevenueGrowth,
		OrderGrowth:            report.OrderGrowth,
	}
}

func hourlyToResponse(hourly []services.HourlyCount) []HourlyCountResponse {
	response := make([]HourlyCountResponse, 0, len(hourly))
	for _, hour := range hourly {
		response = append(response, HourlyCountResponse{Hour: hour.Hour, Orders: hour.Orders})
	}
	return response
}
