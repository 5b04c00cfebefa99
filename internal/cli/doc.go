// Package cli implements the journal command-line client.
//
// The client talks to the database directly, using the same DSN
// configuration as the server, and offers:
//   - add: create an entry (date defaults to today)
//   - list: print every entry, optionally as JSON
//   - weeks: print entries grouped by week, as on the journal page
//   - import: bulk-create entries from a JSON file in one transaction
//   - migrate: bring the schema up to date and exit
//
// App.Run builds the cobra command tree and executes it.
package cli
