// Package main provides the elevage CLI.
package main

import "github.com/mesh-intelligence/elevage/internal/cli"

func main() {
	cli.Execute()
}
