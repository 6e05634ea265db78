package main

import (
	"github.com/verbound/vercmp/cmd"
)

func main() {
	cmd.Execute()
}
