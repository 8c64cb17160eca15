package main

import "uxngo/cmd"

func main() {
	cmd.Execute()
}
