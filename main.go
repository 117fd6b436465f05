package main

import "github.com/ssudhiravinesh/blindsight/cmd"

func main() {
	cmd.Execute()
}
