package main

import (
	"github.com/NVIDIA/crop-advisor/pkg/cli"
)

func main() {
	cli.Execute()
}
