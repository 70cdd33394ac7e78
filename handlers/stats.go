package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/bellacucina/api/models"
	"github.com/bellacucina/api/pricing"
	"github.com/bellacucina/api/storage"
)

type StatsHandler struct {
	Menu   *storage.MenuStore
	Orders *storage.OrderStore
}

type PopularItem struct {
	ItemID  string  `json:"itemId"`
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type StatsResponse struct {
	TotalOrders    int            `json:"totalOrders"`
	TodayOrders    int            `json:"todayOrders"`
	TotalRevenue   float64        `json:"totalRevenue"`
	TodayRevenue   float64        `json:"todayRevenue"`
	ActiveOrders   int            `json:"activeOrders"`
	TotalMenuItems int            `json:"totalMenuItems"`
	AvailableItems int            `json:"availableItems"`
	RecentOrders   []models.Order `json:"recentOrders"`
	PopularItems   []PopularItem  `json:"popularItems"`
}

// Stats handles GET /api/admin/stats: the dashboard numbers. Cancelled
// orders are excluded from revenue and popularity; "today" starts at
// local midnight.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	orders := h.Orders.List(storage.OrderFilter{})
	totalMenuItems, availableItems := h.Menu.Count()

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	resp := StatsResponse{
		TotalOrders:    len(orders),
		TotalMenuItems: totalMenuItems,
		AvailableItems: availableItems,
	}

	counts := make(map[string]*PopularItem)
	for _, o := range orders {
		today := !o.CreatedAt.Before(midnight)
		if today {
			resp.TodayOrders++
		}
		if o.Status == models.StatusPending || o.Status == models.StatusPreparing {
			resp.ActiveOrders++
		}
		if o.Status == models.StatusCancelled {
			continue
		}
		resp.TotalRevenue += o.Total
		if today {
			resp.TodayRevenue += o.Total
		}
		for _, item := range o.Items {
			p, ok := counts[item.MenuItemID]
			if !ok {
				p = &PopularItem{ItemID: item.MenuItemID, Name: item.Name}
				counts[item.MenuItemID] = p
			}
			p.Count += item.Quantity
			p.Revenue += item.Price * float64(item.Quantity)
		}
	}
	resp.TotalRevenue = pricing.Round2(resp.TotalRevenue)
	resp.TodayRevenue = pricing.Round2(resp.TodayRevenue)

	popular := make([]PopularItem, 0, len(counts))
	for _, p := range counts {
		p.Revenue = pricing.Round2(p.Revenue)
		popular = append(popular, *p)
	}
	sort.Slice(popular, func(i, j int) bool { return popular[i].Count > popular[j].Count })
	if len(popular) > 5 {
		popular = popular[:5]
	}
	resp.PopularItems = popular

	// orders are already newest first
	recent := orders
	if len(recent) > 10 {
		recent = recent[:10]
	}
	resp.RecentOrders = recent

	writeJSON(w, http.StatusOK, resp)
}
