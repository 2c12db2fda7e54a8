// Command recordsctl manages the procurement search database: schema
// migrations and fixture seeding.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
