package main

import "github.com/kiesman99/tiledebug/cmd"

func main() {
	cmd.Execute()
}
