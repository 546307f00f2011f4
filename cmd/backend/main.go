package main

import (
	"context"
	"fmt"
	"os"

	"github.com/skillsenselab/backend/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "backend: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(context.Background()); err != nil {
		a.Logger.WithError(err).Error("Application exited with error")
		os.Exit(1)
	}
}
