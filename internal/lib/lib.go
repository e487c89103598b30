// Package lib holds small shared helpers that do not belong to a layer.
package lib
