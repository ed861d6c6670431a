package main

import "studycards.app/cmd"

func main() {
	cmd.Execute()
}
