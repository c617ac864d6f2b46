package panelsdk

import (
	"context"
	"fmt"
)

// ============================================================================
// Categories
// ============================================================================

// AddCategoryRequest creates a category. Name is the only mandatory field.
type AddCategoryRequest struct {
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
	IsFeatured  bool   `json:"isFeatured"`
}

// AddCategory creates a category and returns the backend's confirmation
// message.
func (c *Client) AddCategory(ctx context.Context, req AddCategoryRequest) (string, error) {
	resp, err := c.Post(ctx, endpointAddCategory, req, &RequestOptions{AuthRequired: true})
	if err != nil {
		return "", err
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Categories lists every category.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	resp, err := c.Get(ctx, endpointCategories, &RequestOptions{AuthRequired: true})
	if err != nil {
		return nil, err
	}

	var out struct {
		Category []Category `json:"category"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return nil, err
	}
	return out.Category, nil
}

// AddSubCategoryRequest creates a sub-category under a category.
type AddSubCategoryRequest struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	IsActive   bool   `json:"isActive"`
}

func (c *Client) AddSubCategory(ctx context.Context, req AddSubCategoryRequest) (string, error) {
	resp, err := c.Post(ctx, endpointAddSubCategory, req, &RequestOptions{AuthRequired: true})
	if err != nil {
		return "", err
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// SubCategories lists the sub-categories of one category.
func (c *Client) SubCategories(ctx context.Context, categoryID string) ([]SubCategory, error) {
	if categoryID == "" {
		return nil, fmt.Errorf("panelsdk: category id is required")
	}

	resp, err := c.Get(ctx, endpointSubCategories(categoryID), &RequestOptions{AuthRequired: true})
	if err != nil {
		return nil, err
	}

	var out struct {
		SubCategories []SubCategory `json:"subCategories"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return nil, err
	}
	return out.SubCategories, nil
}

// ============================================================================
// Cities
// ============================================================================

// CityForm is the write shape for both add and edit.
type CityForm struct {
	City        string `json:"city"`
	Latitude    string `json:"latitude,omitempty"`
	Longitude   string `json:"longitude,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func (c *Client) AddCity(ctx context.Context, form CityForm) (string, error) {
	resp, err := c.Post(ctx, endpointAddCity, form, &RequestOptions{AuthRequired: true})
	if err != nil {
		return "", err
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Cities lists every city.
func (c *Client) Cities(ctx context.Context) ([]City, error) {
	resp, err := c.Get(ctx, endpointCities, &RequestOptions{AuthRequired: true})
	if err != nil {
		return nil, err
	}

	var out struct {
		Data []City `json:"data"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// EditCity updates a city in place. The backend treats this as a full-form
// POST, so send the complete form, not a delta.
func (c *Client) EditCity(ctx context.Context, cityID string, form CityForm) (string, error) {
	if cityID == "" {
		return "", fmt.Errorf("panelsdk: city id is required")
	}

	resp, err := c.Post(ctx, endpointEditCity(cityID), form, &RequestOptions{AuthRequired: true})
	if err != nil {
		return "", err
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
