package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusCompleted,
	StatusCancelled,
}

func (s OrderStatus) IsValid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func OrderStatusList() string {
	names := make([]string, 0, len(OrderStatuses))
	for _, s := range OrderStatuses {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

type OrderType string

const (
	OrderTypePickup   OrderType = "Pickup"
	OrderTypeDelivery OrderType = "Delivery"
)

func (t OrderType) IsValid() bool {
	return t == OrderTypePickup || t == OrderTypeDelivery
}

// OrderItem is a line item. Name and Price are snapshots taken at order
// time, so later menu edits never change an existing order.
type OrderItem struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type Order struct {
	ID                  string      `json:"id"`
	CustomerName        string      `json:"customerName"`
	Email               string      `json:"email"`
	Phone               string      `json:"phone"`
	OrderType           OrderType   `json:"orderType"`
	Address             string      `json:"address,omitempty"`
	Items               []OrderItem `json:"items"`
	Subtotal            float64     `json:"subtotal"`
	Tax                 float64     `json:"tax"`
	Total               float64     `json:"total"`
	Status              OrderStatus `json:"status"`
	SpecialInstructions string      `json:"specialInstructions,omitempty"`
	CreatedAt           time.Time   `json:"createdAt"`
}

// CreateOrderPayload is the checkout request body. Totals are never part
// of the payload; the server always computes them.
type CreateOrderPayload struct {
	CustomerName        string      `json:"customerName"`
	Email               string      `json:"email"`
	Phone               string      `json:"phone"`
	OrderType           OrderType   `json:"orderType"`
	Address             string      `json:"address"`
	Items               []OrderItem `json:"items"`
	SpecialInstructions string      `json:"specialInstructions"`
}

func (p CreateOrderPayload) Validate() error {
	var errs *multierror.Error
	if len(strings.TrimSpace(p.CustomerName)) < 2 {
		errs = multierror.Append(errs, errors.New("customerName is required (min 2 characters)"))
	}
	if strings.TrimSpace(p.Email) == "" {
		errs = multierror.Append(errs, errors.New("email is required"))
	}
	if strings.TrimSpace(p.Phone) == "" {
		errs = multierror.Append(errs, errors.New("phone is required"))
	}
	if !p.OrderType.IsValid() {
		errs = multierror.Append(errs, errors.New(`orderType must be "Pickup" or "Delivery"`))
	}
	if p.OrderType == OrderTypeDelivery && strings.TrimSpace(p.Address) == "" {
		errs = multierror.Append(errs, errors.New("address is required for delivery orders"))
	}
	if len(p.Items) == 0 {
		errs = multierror.Append(errs, errors.New("items array is required and must not be empty"))
	}
	for i, item := range p.Items {
		if strings.TrimSpace(item.MenuItemID) == "" {
			errs = multierror.Append(errs, fmt.Errorf("items[%d].menuItemId is required", i))
		}
		if strings.TrimSpace(item.Name) == "" {
			errs = multierror.Append(errs, fmt.Errorf("items[%d].name is required", i))
		}
		if item.Price <= 0 {
			errs = multierror.Append(errs, fmt.Errorf("items[%d].price must be a positive number", i))
		}
		if item.Quantity < 1 {
			errs = multierror.Append(errs, fmt.Errorf("items[%d].quantity must be a positive integer", i))
		}
	}
	return errs.ErrorOrNil()
}

type UpdateOrderStatusPayload struct {
	Status OrderStatus `json:"status"`
}
