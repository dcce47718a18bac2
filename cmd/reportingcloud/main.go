package main

import (
	"os"

	"github.com/hashicorp-forge/reportingcloud/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
