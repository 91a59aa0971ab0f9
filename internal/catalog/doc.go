// Package catalog provides the immutable lookup tables of the GNSS viewer.
//
// The tables map coded values from the receiver and the application (fix
// quality, signal quality, UBX message classes, NMEA sentence types, error
// codes, status messages, UI colors) to their descriptive strings. Lookups of
// unknown keys return an error wrapping domain.ErrUnknownCode. The tables are
// fixed at startup and safe for concurrent readers.
package catalog
