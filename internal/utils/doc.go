// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Node id slice operations
//   - Title validation
//   - Terminal interactivity checks
package utils
