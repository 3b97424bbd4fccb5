// Package main is the entry point for the wordguess CLI.
package main

import "wordguess.dev/pkg/wordguess/cmd"

func main() {
	cmd.Execute()
}
