package main

import (
	"context"

	"github.com/cube2222/octovalue/cmd"
)

func main() {
	cmd.Execute(context.Background())
}
