package catalog

import (
	"fmt"

	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/domain"
)

var errorMessages = map[string]string{
	"GNSS001": "GNSS receiver not connected",
	"GNSS002": "Invalid NMEA sentence",
	"GNSS003": "Serial port error",
	"WEB001":  "Invalid API request",
	"WEB002":  "Resource not found",
	"WEB003":  "Rate limit exceeded",
	"SYS001":  "System configuration error",
	"SYS002":  "Database connection failed",
}

var statusMessages = map[string]string{
	"CONNECTING":   "Connecting to GNSS receiver...",
	"CONNECTED":    "GNSS receiver connected",
	"DISCONNECTED": "GNSS receiver disconnected",
	"NO_FIX":       "No satellite fix",
	"2D_FIX":       "2D fix acquired",
	"3D_FIX":       "3D fix acquired",
	"RTK_FLOAT":    "RTK float solution",
	"RTK_FIXED":    "RTK fixed solution",
}

func ErrorMessage(code string) (string, error) {
	message, ok := errorMessages[code]
	if !ok {
		return "", fmt.Errorf("error code %s: %w", code, domain.ErrUnknownCode)
	}
	return message, nil
}

func StatusMessage(key string) (string, error) {
	message, ok := statusMessages[key]
	if !ok {
		return "", fmt.Errorf("status key %s: %w", key, domain.ErrUnknownCode)
	}
	return message, nil
}

// ErrorCodes returns all known error codes in ascending order.
func ErrorCodes() []string {
	return sortedStringKeys(errorMessages)
}

// StatusKeys returns all known status keys in ascending order.
func StatusKeys() []string {
	return sortedStringKeys(statusMessages)
}
