package main

import (
	"context"

	"github.com/calebh/stackbuddy/cmd"
)

func main() {
	ctx := context.Background()
	cmd.Execute(ctx)
}
