package storage

import (
	"time"

	"github.com/bellacucina/api/models"
)

// SeedMenuItems returns the fixed starting catalog: 16 items across the
// four categories. Ids go up to menu-16.
func SeedMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          "menu-1",
			Name:        "Classic Bruschetta",
			Description: "Toasted bread with fresh tomatoes, basil & balsamic glaze",
			Price:       8.99,
			Category:    models.CategoryAppetizers,
			Image:       "https://images.unsplash.com/photo-1572695157366-5e585ab2b69f?w=600",
			Available:   true,
		},
		{
			ID:          "menu-2",
			Name:        "Garlic Bread",
			Description: "Oven-baked with herb butter and parmesan",
			Price:       6.49,
			Category:    models.CategoryAppetizers,
			Image:       "https://images.unsplash.com/photo-1619535860434-ba1d8fa12536?w=600",
			Available:   true,
		},
		{
			ID:          "menu-3",
			Name:        "Soup of the Day",
			Description: "Chef's daily selection served with crusty bread",
			Price:       7.99,
			Category:    models.CategoryAppetizers,
			Image:       "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=600",
			Available:   true,
		},
		{
			ID:          "menu-4",
			Name:        "Caprese Salad",
			Description: "Fresh mozzarella, tomatoes, basil with olive oil",
			Price:       10.99,
			Category:    models.CategoryAppetizers,
			Image:       "https://images.unsplash.com/photo-1608032077018-c9aad9565d29?w=600",
			Available:   true,
		},
		{
			ID:          "menu-5",
			Name:        "Margherita Pizza",
			Description: "San Marzano tomatoes, fresh mozzarella, basil",
			Price:       14.99,
			Category:    models.CategoryMains,
			Image:       "https://images.unsplash.com/photo-1604068549290-dea0e4a305ca?w=600",
			Available:   true,
		},
		{
			ID:          "menu-6",
			Name:        "Grilled Salmon",
			Description: "Atlantic salmon with lemon butter, seasonal vegetables",
			Price:       22.99,
			Category:    models.CategoryMains,
			Image:       "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=600",
			Available:   true,
		},
		{
			ID:          "menu-7",
			Name:        "Pasta Carbonara",
			Description: "Spaghetti with pancetta, egg, parmesan, black pepper",
			Price:       16.99,
			Category:    models.CategoryMains,
			Image:       "https://images.unsplash.com/photo-1612874742237-6526221588e3?w=600",
			Available:   true,
		},
		{
			ID:          "menu-8",
			Name:        "Chicken Parmesan",
			Description: "Breaded chicken breast, marinara, melted mozzarella",
			Price:       18.99,
			Category:    models.CategoryMains,
			Image:       "https://images.unsplash.com/photo-1632778149955-e80f8ceca2e8?w=600",
			Available:   true,
		},
		{
			ID:          "menu-9",
			Name:        "Mushroom Risotto",
			Description: "Arborio rice with wild mushrooms, parmesan, truffle oil",
			Price:       17.99,
			Category:    models.CategoryMains,
			Image:       "https://images.unsplash.com/photo-1476124369491-e7addf5db371?w=600",
			Available:   true,
		},
		{
			ID:          "menu-10",
			Name:        "Tiramisu",
			Description: "Classic Italian coffee-flavored layered dessert",
			Price:       9.99,
			Category:    models.CategoryDesserts,
			Image:       "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=600",
			Available:   true,
		},
		{
			ID:          "menu-11",
			Name:        "Chocolate Lava Cake",
			Description: "Warm molten center with vanilla gelato",
			Price:       10.99,
			Category:    models.CategoryDesserts,
			Image:       "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?w=600",
			Available:   true,
		},
		{
			ID:          "menu-12",
			Name:        "Panna Cotta",
			Description: "Vanilla bean cream with berry compote",
			Price:       8.99,
			Category:    models.CategoryDesserts,
			Image:       "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=600",
			Available:   true,
		},
		{
			ID:          "menu-13",
			Name:        "Fresh Lemonade",
			Description: "House-made with mint",
			Price:       4.99,
			Category:    models.CategoryDrinks,
			Image:       "https://images.unsplash.com/photo-1621263764928-df1444c5e859?w=600",
			Available:   true,
		},
		{
			ID:          "menu-14",
			Name:        "Espresso",
			Description: "Double-shot Italian roast",
			Price:       3.99,
			Category:    models.CategoryDrinks,
			Image:       "https://images.unsplash.com/photo-1510707577719-ae7c14805e3a?w=600",
			Available:   true,
		},
		{
			ID:          "menu-15",
			Name:        "House Red Wine",
			Description: "Glass of Chianti Classico",
			Price:       12.99,
			Category:    models.CategoryDrinks,
			Image:       "https://images.unsplash.com/photo-1510812431401-41d2bd2722f3?w=600",
			Available:   true,
		},
		{
			ID:          "menu-16",
			Name:        "Sparkling Water",
			Description: "San Pellegrino 750ml",
			Price:       3.49,
			Category:    models.CategoryDrinks,
			Image:       "https://images.unsplash.com/photo-1523362628745-0c100150b504?w=600",
			Available:   true,
		},
	}
}

// SeedOrders returns the fixed starting orders: 8 orders spanning all five
// statuses, timestamped relative to now so they always look recent. Ids go
// up to ORD-008.
func SeedOrders(now time.Time) []models.Order {
	hoursAgo := func(h float64) time.Time {
		return now.Add(-time.Duration(h * float64(time.Hour)))
	}

	return []models.Order{
		{
			ID:           "ORD-001",
			CustomerName: "Sarah Johnson",
			Email:        "sarah@example.com",
			Phone:        "555-0101",
			OrderType:    models.OrderTypeDelivery,
			Address:      "123 Main St, Apt 4B",
			Items: []models.OrderItem{
				{MenuItemID: "menu-5", Name: "Margherita Pizza", Price: 14.99, Quantity: 2},
				{MenuItemID: "menu-13", Name: "Fresh Lemonade", Price: 4.99, Quantity: 1},
			},
			Subtotal:  34.97,
			Tax:       3.5,
			Total:     38.47,
			Status:    models.StatusCompleted,
			CreatedAt: hoursAgo(4.5),
		},
		{
			ID:           "ORD-002",
			CustomerName: "Mike Chen",
			Email:        "mike@example.com",
			Phone:        "555-0102",
			OrderType:    models.OrderTypePickup,
			Items: []models.OrderItem{
				{MenuItemID: "menu-6", Name: "Grilled Salmon", Price: 22.99, Quantity: 1},
				{MenuItemID: "menu-14", Name: "Espresso", Price: 3.99, Quantity: 1},
			},
			Subtotal:  26.98,
			Tax:       2.7,
			Total:     29.68,
			Status:    models.StatusCompleted,
			CreatedAt: hoursAgo(3.75),
		},
		{
			ID:           "ORD-003",
			CustomerName: "Emily Davis",
			Email:        "emily@example.com",
			Phone:        "555-0103",
			OrderType:    models.OrderTypeDelivery,
			Address:      "456 Oak Ave",
			Items: []models.OrderItem{
				{MenuItemID: "menu-7", Name: "Pasta Carbonara", Price: 16.99, Quantity: 1},
				{MenuItemID: "menu-10", Name: "Tiramisu", Price: 9.99, Quantity: 1},
				{MenuItemID: "menu-15", Name: "House Red Wine", Price: 12.99, Quantity: 1},
			},
			Subtotal:            39.97,
			Tax:                 4.0,
			Total:               43.97,
			Status:              models.StatusReady,
			SpecialInstructions: "Please ring the doorbell twice",
			CreatedAt:           hoursAgo(3.25),
		},
		{
			ID:           "ORD-004",
			CustomerName: "James Wilson",
			Email:        "james@example.com",
			Phone:        "555-0104",
			OrderType:    models.OrderTypePickup,
			Items: []models.OrderItem{
				{MenuItemID: "menu-1", Name: "Classic Bruschetta", Price: 8.99, Quantity: 2},
				{MenuItemID: "menu-8", Name: "Chicken Parmesan", Price: 18.99, Quantity: 1},
			},
			Subtotal:  36.97,
			Tax:       3.7,
			Total:     40.67,
			Status:    models.StatusPreparing,
			CreatedAt: hoursAgo(3),
		},
		{
			ID:           "ORD-005",
			CustomerName: "Lisa Anderson",
			Email:        "lisa@example.com",
			Phone:        "555-0105",
			OrderType:    models.OrderTypeDelivery,
			Address:      "789 Pine Rd, Suite 2",
			Items: []models.OrderItem{
				{MenuItemID: "menu-9", Name: "Mushroom Risotto", Price: 17.99, Quantity: 1},
				{MenuItemID: "menu-11", Name: "Chocolate Lava Cake", Price: 10.99, Quantity: 1},
				{MenuItemID: "menu-16", Name: "Sparkling Water", Price: 3.49, Quantity: 2},
			},
			Subtotal:            35.96,
			Tax:                 3.6,
			Total:               39.56,
			Status:              models.StatusPreparing,
			SpecialInstructions: "Nut allergy — no tree nuts please",
			CreatedAt:           hoursAgo(2.67),
		},
		{
			ID:           "ORD-006",
			CustomerName: "Tom Martinez",
			Email:        "tom@example.com",
			Phone:        "555-0106",
			OrderType:    models.OrderTypePickup,
			Items: []models.OrderItem{
				{MenuItemID: "menu-4", Name: "Caprese Salad", Price: 10.99, Quantity: 1},
				{MenuItemID: "menu-5", Name: "Margherita Pizza", Price: 14.99, Quantity: 1},
			},
			Subtotal:  25.98,
			Tax:       2.6,
			Total:     28.58,
			Status:    models.StatusPending,
			CreatedAt: hoursAgo(2.42),
		},
		{
			ID:           "ORD-007",
			CustomerName: "Amy Thompson",
			Email:        "amy@example.com",
			Phone:        "555-0107",
			OrderType:    models.OrderTypeDelivery,
			Address:      "321 Elm Blvd",
			Items: []models.OrderItem{
				{MenuItemID: "menu-2", Name: "Garlic Bread", Price: 6.49, Quantity: 3},
				{MenuItemID: "menu-7", Name: "Pasta Carbonara", Price: 16.99, Quantity: 2},
			},
			Subtotal:            53.45,
			Tax:                 5.35,
			Total:               58.8,
			Status:              models.StatusPending,
			SpecialInstructions: "Extra parmesan on the carbonara",
			CreatedAt:           hoursAgo(2.3),
		},
		{
			ID:           "ORD-008",
			CustomerName: "David Lee",
			Email:        "david@example.com",
			Phone:        "555-0108",
			OrderType:    models.OrderTypePickup,
			Items: []models.OrderItem{
				{MenuItemID: "menu-3", Name: "Soup of the Day", Price: 7.99, Quantity: 1},
				{MenuItemID: "menu-6", Name: "Grilled Salmon", Price: 22.99, Quantity: 1},
			},
			Subtotal:  30.98,
			Tax:       3.1,
			Total:     34.08,
			Status:    models.StatusCancelled,
			CreatedAt: hoursAgo(6),
		},
	}
}
