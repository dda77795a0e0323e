// Package main is the entry point for the imgfork CLI.
package main

import "imgfork.dev/pkg/imgfork/cmd"

func main() {
	cmd.Execute()
}
