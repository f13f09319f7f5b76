package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/go-beans/app/greeting"
	"github.com/km-arc/go-beans/framework/app"
)

func main() {
	application := app.New() // loads .env automatically

	if err := application.Register(&greeting.Provider{}); err != nil {
		fail(err)
	}
	if err := application.Boot(); err != nil {
		fail(err)
	}
	if application.IsDebug() {
		application.PrintBeans(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
