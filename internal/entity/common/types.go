package common

// Meta 分页元数据
type Meta struct {
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Pages int64 `json:"pages"`
}

// BaseParams 通用分页参数
type BaseParams struct {
	Page  int64 `json:"page" form:"page"`
	Limit int64 `json:"limit" form:"limit"`
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Normalize clamps page and limit to usable values.
func (p *BaseParams) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
}

// Offset returns the number of rows skipped before the current page.
func (p BaseParams) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return int((p.Page - 1) * p.Limit)
}

// NewMeta computes pagination metadata. Pages is ceil(total/limit).
func NewMeta(total int64, params BaseParams) *Meta {
	params.Normalize()
	pages := total / params.Limit
	if total%params.Limit != 0 {
		pages++
	}
	return &Meta{
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
		Pages: pages,
	}
}
