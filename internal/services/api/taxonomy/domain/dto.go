// Package domain holds DTOs for the taxonomy http and service contracts
package domain

import "cictt/internal/core/taxonomy"

// CategoriesQuery filters the category list
type CategoriesQuery struct {
	Group string `json:"group,omitempty" validate:"omitempty,max=100" example:"Loss of Control"`
}

// CodeQuery names one category
type CodeQuery struct {
	Code string `json:"code" validate:"required,catcode" example:"LOC-I"`
}

// SearchQuery finds categories by keyword
type SearchQuery struct {
	Q         string `json:"q" validate:"required,max=100" example:"fuel"`
	Threshold int    `json:"threshold" validate:"min=0,max=10" example:"5"`
}

// SearchHit is one category matched by a search
type SearchHit = taxonomy.SearchHit
