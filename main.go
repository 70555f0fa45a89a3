package main

import "github.com/avhrem/novelbind/cmd"

func main() {
	cmd.Execute()
}
