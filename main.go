package main

import "github.com/gobeam-dev/gobeam/cmd"

func main() {
	cmd.Execute()
}
