// Package export writes recorded track points to interchange files.
//
// The exporter honors the configured format whitelist and export directory.
// Supported formats are csv, json and kml; anything else fails with
// domain.ErrUnsupportedFormat.
package export
