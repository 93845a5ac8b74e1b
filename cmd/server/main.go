// Command server runs the parts HTTP API.
//
// Usage:
//
//	server [--config=config.yaml] [--migrate]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/partsdb-backend/internal/app"
)

func main() {
	var opts app.Options
	pflag.StringVar(&opts.ConfigPath, "config", "", "path to the YAML config (default: $CONFIG_PATH or ./config.yaml)")
	pflag.BoolVar(&opts.Migrate, "migrate", false, "apply database migrations before serving")
	pflag.Parse()

	if err := app.Run(context.Background(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
