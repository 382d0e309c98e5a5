/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "todo/cmd"

func main() {
	cmd.Execute()
}
