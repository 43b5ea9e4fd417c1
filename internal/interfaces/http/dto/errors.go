package dto

import "net/http"

// Transport-level error codes. Domain errors carry their own codes and are
// surfaced verbatim; these cover failures before a service is ever reached.
const (
	// ErrCodeBadRequest is used for malformed requests and binding failures
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMIT_EXCEEDED"
	// ErrCodeRequestTooLarge is used when the request body exceeds the limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps error codes (transport and domain) to HTTP status
// codes. Domain codes not listed here fall through to 500 so a missing entry
// is noticed rather than silently reported as a client error.
var ErrorCodeHTTPStatus = map[string]int{
	// Transport
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	// Shared sentinels
	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"INVALID_INPUT":        http.StatusBadRequest,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"VENDOR_NOT_ALLOWED":   http.StatusForbidden,

	// Category mapping
	"EMPTY_SELECTION":           http.StatusBadRequest,
	"OUR_CATEGORY_NOT_FOUND":    http.StatusNotFound,
	"VENDOR_CATEGORY_NOT_FOUND": http.StatusNotFound,
	"MAPPING_NOT_FOUND":         http.StatusNotFound,
	"INVALID_OUR_CATEGORY":      http.StatusBadRequest,
	"INVALID_VENDOR_CODE":       http.StatusBadRequest,
	"INVALID_VENDOR_CATEGORY":   http.StatusBadRequest,

	// Vendors and feeds
	"INVALID_VENDOR":  http.StatusBadRequest,
	"VENDOR_INACTIVE": http.StatusUnprocessableEntity,
	"EMPTY_FEED":      http.StatusBadRequest,

	// Catalog
	"HAS_CHILDREN":       http.StatusConflict,
	"HAS_PRODUCTS":       http.StatusConflict,
	"MAX_DEPTH_EXCEEDED": http.StatusUnprocessableEntity,
	"INVALID_PARENT":     http.StatusUnprocessableEntity,
	"INVALID_CATEGORY":   http.StatusBadRequest,

	// Orders
	"EMPTY_ORDER":        http.StatusBadRequest,
	"INVALID_TRANSITION": http.StatusUnprocessableEntity,

	// Coupons
	"COUPON_NOT_FOUND":      http.StatusNotFound,
	"COUPON_NOT_USABLE":     http.StatusUnprocessableEntity,
	"COUPON_NOT_APPLICABLE": http.StatusUnprocessableEntity,
	"USAGE_EXHAUSTED":       http.StatusUnprocessableEntity,
	"INVALID_WINDOW":        http.StatusBadRequest,
	"INVALID_DISCOUNT":      http.StatusBadRequest,

	// Content sections
	"INVALID_ORDERING": http.StatusBadRequest,

	// State guards
	"ALREADY_ACTIVE":       http.StatusConflict,
	"ALREADY_INACTIVE":     http.StatusConflict,
	"ALREADY_DISCONTINUED": http.StatusConflict,

	// Entity field validation
	"INVALID_CODE":          http.StatusBadRequest,
	"INVALID_NAME":          http.StatusBadRequest,
	"INVALID_TITLE":         http.StatusBadRequest,
	"INVALID_TYPE":          http.StatusBadRequest,
	"INVALID_VALUE":         http.StatusBadRequest,
	"INVALID_PRICE":         http.StatusBadRequest,
	"INVALID_BARCODE":       http.StatusBadRequest,
	"INVALID_QUANTITY":      http.StatusBadRequest,
	"INVALID_PRODUCT":       http.StatusBadRequest,
	"INVALID_PRODUCT_NAME":  http.StatusBadRequest,
	"INVALID_ORDER_NUMBER":  http.StatusBadRequest,
	"INVALID_CUSTOMER_NAME": http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
