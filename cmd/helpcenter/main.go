// Package main is the entry point for the help center server and its
// companion database commands.
package main

func main() {
	Execute()
}
