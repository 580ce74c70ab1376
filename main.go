package main

import "github.com/guimove/pewfit/cmd"

func main() {
	cmd.Execute()
}
