package forms

// PaginationForm bounds list queries. Zero values fall back to the
// defaults in Window.
type PaginationForm struct {
	Limit  int64 `form:"limit" json:"limit" binding:"omitempty,min=1,max=100"`
	Offset int64 `form:"offset" json:"offset" binding:"omitempty,min=0"`
}

const defaultPageSize = 10

// Window resolves the effective limit and offset.
func (p PaginationForm) Window() (limit, offset int64) {
	limit = p.Limit
	if limit == 0 {
		limit = defaultPageSize
	}
	if p.Offset > 0 {
		offset = p.Offset
	}
	return limit, offset
}
