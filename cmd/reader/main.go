// Package main provides the terminal client for the reading helper.
//
// It submits passages for annotation, looks up individual words,
// marks words as known, and manages the account and saved passages.
//
// Usage:
//
//	reader login <username>
//	reader read [file]
//
// See --help for all available options.
package main

// main is the entry point for the reader CLI.
func main() {
	Execute()
}
