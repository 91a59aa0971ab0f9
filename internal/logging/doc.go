// Package logging configures the process-wide logger from the settings.
//
// Output always goes to stdout; when file logging is enabled it is teed into
// the configured log file as well. Rotation of that file is left to an
// external collaborator, the size and backup limits travel in the settings
// for its benefit.
package logging
