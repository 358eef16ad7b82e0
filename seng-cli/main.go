package main

import (
	"github.com/Privex/go-steemengine/seng-cli/cmd"
)

func main() { cmd.Execute() }
