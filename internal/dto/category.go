package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// CategoryRequest is used for both create and full update of a category.
type CategoryRequest struct {
	Name             string  `json:"name" binding:"required,max=255"`
	Kind             string  `json:"kind" binding:"required,oneof=income expense"`
	ParentCategoryID *int64  `json:"parentCategoryId" binding:"omitempty,gt=0"`
	Icon             *string `json:"icon" binding:"omitempty,max=50"`
	Color            *string `json:"color" binding:"omitempty,hexcolor,len=7"`
	IsActive         *bool   `json:"isActive"`
	SortOrder        *int    `json:"sortOrder"`
}

func (r CategoryRequest) ToDomain(userID int64) domain.Category {
	owner := userID
	return domain.Category{
		UserID:           &owner,
		ParentCategoryID: r.ParentCategoryID,
		Kind:             domain.CategoryKind(r.Kind),
		Name:             r.Name,
		Icon:             emptyToNil(r.Icon),
		Color:            emptyToNil(r.Color),
		IsActive:         boolOr(r.IsActive, true),
		SortOrder:        intOr(r.SortOrder, 0),
	}
}

// ListCategoriesParams are the query parameters of the category listing.
type ListCategoriesParams struct {
	Kind string `form:"kind" binding:"omitempty,oneof=income expense"`
}

type CategoryResponse struct {
	ID               int64     `json:"id"`
	ParentCategoryID *int64    `json:"parentCategoryId"`
	Kind             string    `json:"kind"`
	Name             string    `json:"name"`
	Icon             *string   `json:"icon"`
	Color            *string   `json:"color"`
	IsSystem         bool      `json:"isSystem"`
	IsActive         bool      `json:"isActive"`
	SortOrder        int       `json:"sortOrder"`
	CreatedAt        time.Time `json:"createdAt"`
}

type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:               c.ID,
		ParentCategoryID: c.ParentCategoryID,
		Kind:             string(c.Kind),
		Name:             c.Name,
		Icon:             c.Icon,
		Color:            c.Color,
		IsSystem:         c.IsSystem,
		IsActive:         c.IsActive,
		SortOrder:        c.SortOrder,
		CreatedAt:        c.CreatedAt,
	}
}

func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return ListCategoriesResponse{Categories: out}
}
