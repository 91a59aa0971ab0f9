package catalog

const (
	Version    = "1.0.0"
	APIVersion = "v1"
)

// Response is the envelope template for API payloads.
type Response struct {
	Status string `json:"status"`
	Code   int    `json:"code"`
}

// SuccessResponse returns a fresh success envelope. Callers may modify the
// returned value without affecting later calls.
func SuccessResponse() Response {
	return Response{Status: "success", Code: 200}
}

// ErrorResponse returns a fresh error envelope.
func ErrorResponse() Response {
	return Response{Status: "error", Code: 400}
}
