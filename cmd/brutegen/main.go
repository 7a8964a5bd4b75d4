package main

import (
	"github.com/assetnote/brutegen/cmd/brutegen/cmd"
)

func main() {
	cmd.Execute()
}
