package main

import "github.com/Tiliavir/trivial-gratitude-journal/cmd"

func main() {
	cmd.Execute()
}
