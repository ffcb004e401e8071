package pagination

// Meta contains metadata about a paginated result.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	FirstItem   int  `json:"first_item"   yaml:"first_item"`
	LastItem    int  `json:"last_item"    yaml:"last_item"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates pagination metadata from parameters and the total item
// count. FirstItem and LastItem are 1-based and both zero when the page is
// empty.
func NewMeta(params Params, totalItems int) Meta {
	totalPages := TotalPages(totalItems, params.PageSize)
	start, end := params.Window(totalItems)

	first, last := 0, 0
	if end > start {
		first, last = start+1, end
	}

	return Meta{
		CurrentPage: params.Page,
		PageSize:    params.PageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		FirstItem:   first,
		LastItem:    last,
		HasPrevious: params.Page > MinPage && totalPages > 0,
		HasNext:     params.Page < totalPages,
	}
}
