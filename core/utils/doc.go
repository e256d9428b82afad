// Package utils provides helpers for autonomous system number notation.
package utils
