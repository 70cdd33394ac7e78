package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

type Category string

const (
	CategoryAppetizers Category = "Appetizers"
	CategoryMains      Category = "Mains"
	CategoryDesserts   Category = "Desserts"
	CategoryDrinks     Category = "Drinks"
)

var Categories = []Category{
	CategoryAppetizers,
	CategoryMains,
	CategoryDesserts,
	CategoryDrinks,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func categoryList() string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Available   bool     `json:"available"`
}

// CreateMenuItemPayload is the request body for creating a menu item.
// Available defaults to true when omitted.
type CreateMenuItemPayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Available   *bool    `json:"available"`
}

// Validate collects every violation rather than stopping at the first.
func (p CreateMenuItemPayload) Validate() error {
	var errs *multierror.Error
	if len(strings.TrimSpace(p.Name)) < 2 {
		errs = multierror.Append(errs, errors.New("name is required (min 2 characters)"))
	}
	if len(strings.TrimSpace(p.Description)) < 5 {
		errs = multierror.Append(errs, errors.New("description is required (min 5 characters)"))
	}
	if p.Price <= 0 {
		errs = multierror.Append(errs, errors.New("price must be a positive number"))
	}
	if !p.Category.IsValid() {
		errs = multierror.Append(errs, fmt.Errorf("category must be one of: %s", categoryList()))
	}
	if strings.TrimSpace(p.Image) == "" {
		errs = multierror.Append(errs, errors.New("image URL is required"))
	}
	return errs.ErrorOrNil()
}

// UpdateMenuItemPayload is a partial update; only supplied fields are
// validated and applied.
type UpdateMenuItemPayload struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Category    *Category `json:"category"`
	Image       *string   `json:"image"`
	Available   *bool     `json:"available"`
}

func (p UpdateMenuItemPayload) Validate() error {
	var errs *multierror.Error
	if p.Name != nil && len(strings.TrimSpace(*p.Name)) < 2 {
		errs = multierror.Append(errs, errors.New("name must be at least 2 characters"))
	}
	if p.Description != nil && len(strings.TrimSpace(*p.Description)) < 5 {
		errs = multierror.Append(errs, errors.New("description must be at least 5 characters"))
	}
	if p.Price != nil && *p.Price <= 0 {
		errs = multierror.Append(errs, errors.New("price must be a positive number"))
	}
	if p.Category != nil && !p.Category.IsValid() {
		errs = multierror.Append(errs, fmt.Errorf("category must be one of: %s", categoryList()))
	}
	if p.Image != nil && strings.TrimSpace(*p.Image) == "" {
		errs = multierror.Append(errs, errors.New("image URL must not be empty"))
	}
	return errs.ErrorOrNil()
}
