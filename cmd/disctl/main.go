/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/disgo/cmd/disctl/cmd"

func main() {
	cmd.Execute()
}
