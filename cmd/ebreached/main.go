// Package main provides the entry point for the ebreached CLI.
//
// ebreached checks email addresses against the BreachDirectory breach
// database (via RapidAPI) and writes the findings to a timestamped
// result file.
//
// Usage:
//
//	ebreached check -e user@example.com -f apikey.txt
//	ebreached check -l emails.txt -f apikey.txt
//
// See --help for all available options.
package main

// main is the entry point for ebreached.
func main() {
	Execute()
}
