// Command linhatempo renders an interactive timeline of geography and
// history events sourced from a public spreadsheet.
//
// Usage:
//
//	linhatempo              Interactive terminal timeline (same as "browse")
//	linhatempo list         Print the filtered table
//	linhatempo themes       Print the distinct theme vocabulary
//	linhatempo export       Write the filtered table as CSV
//	linhatempo render       Write a standalone HTML timeline document
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
