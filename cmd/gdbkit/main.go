/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/waypt/gdbkit/cmd/gdbkit/cmd"

func main() {
	cmd.Execute()
}
