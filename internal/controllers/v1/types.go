package v1

import (
	"github.com/pennywise/backend/internal/uuid"
)

// URIID is the URI binding for all resource routes with an :id parameter.
type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"`
}

// Pagination contains metadata about a paginated collection response.
type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}
