// Package ui provides the Bubble Tea live view for an install in progress.
package ui
