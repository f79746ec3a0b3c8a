// Package utils provides a collection of small helper functions for common tasks,
// such as filename sanitizing, safe integer conversion and slice mapping.
package utils
