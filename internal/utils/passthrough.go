// Package utils holds small helpers that are not tied to a route.
package utils

import "log"

// PassThrough logs a fixed line and returns its five arguments unchanged
// and in the same order. Nothing in the HTTP surface calls it.
func PassThrough[A, B, C, D, E any](a A, b B, c C, d D, e E) (A, B, C, D, E) {
	log.Println("Função muito longa!")
	return a, b, c, d, e
}
