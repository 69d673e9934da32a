package pagination

const (
	// DefaultPageSize matches the front end's default listing size.
	DefaultPageSize = 20
	// MaxPageSize caps a caller-supplied limit.
	MaxPageSize = 100
)

// Page is a normalized, 1-indexed page request.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps raw page/limit query values into a usable Page.
func Normalize(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset is the row offset for a SQL LIMIT/OFFSET query.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns ceil(total / size); zero rows means zero pages.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
