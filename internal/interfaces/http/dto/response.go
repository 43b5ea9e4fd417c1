package dto

// Response is the envelope every endpoint returns. Success responses carry
// Data (and Meta for paginated listings), failures carry Error.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorInfo carries a stable code for clients to branch on plus a
// human-readable message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta describes the pagination window of a listing.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func NewSuccessResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// NewSuccessResponseWithMeta wraps a listing page. TotalPages is rounded up
// so a partial final page still counts.
func NewSuccessResponseWithMeta(data interface{}, total int64, page, pageSize int) Response {
	pages := (int(total) + pageSize - 1) / pageSize
	return Response{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: pages,
		},
	}
}

func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error:   &ErrorInfo{Code: code, Message: message},
	}
}

// IDRequest binds a uuid path parameter.
type IDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
