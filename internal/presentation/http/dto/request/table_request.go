package request

// CreateTableRequest represents a table creation request
type CreateTableRequest struct {
	TableNumber string `json:"table_number" binding:"required,max=50"`
	Capacity    int    `json:"capacity" binding:"omitempty,min=1"`
	Area        string `json:"area"`
}

// UpdateTableRequest represents a table update request
type UpdateTableRequest struct {
	TableNumber *string `json:"table_number" binding:"omitempty,max=50"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=1"`
	Area        *string `json:"area"`
}

// TableStatusRequest moves a table between available, occupied and reserved
type TableStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Guests int    `json:"guests" binding:"omitempty,min=0"`
}
