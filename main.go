package main

import "fuelstat/cmd"

func main() {
	cmd.Execute()
}
