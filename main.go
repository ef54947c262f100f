package main

import "fxtool/cmd"

func main() {
	cmd.Execute()
}
