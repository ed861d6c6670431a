package queryparams

const (
	DefaultPage    = 1
	DefaultPerPage = 50
	MaxPerPage     = 200
)

// ListParams liste uç noktalarının sorgu parametreleri.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	Q       string `query:"q"`
}

// DefaultListParams varsayılan sayfalama değerlerini döndürür.
func DefaultListParams() ListParams {
	return ListParams{Page: DefaultPage, PerPage: DefaultPerPage}
}

// Validate geçersiz değerleri varsayılanlarla değiştirir.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
}

func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}
