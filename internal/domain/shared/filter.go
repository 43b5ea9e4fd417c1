package shared

// Filter carries the listing parameters repositories understand. Search is
// matched against type-specific columns by each repository; Filters holds
// exact-match column constraints.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}
