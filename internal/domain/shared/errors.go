package shared

// DomainError is an error with a stable machine-readable code. Handlers map
// the code to an HTTP status; the code is also what API clients branch on,
// so existing codes must never be renamed.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Sentinels shared across bounded contexts. Context-specific errors live
// next to their aggregates.
var (
	ErrNotFound         = NewDomainError("NOT_FOUND", "Resource not found")
	ErrVendorNotAllowed = NewDomainError("VENDOR_NOT_ALLOWED", "Vendor is not on the allow-list")
)
