package main

import (
	"fmt"
	"os"

	"github.com/neoqr/neoqr/internal/adapters/config"
	"github.com/neoqr/neoqr/pkg/logger"
	qr "github.com/neoqr/neoqr/pkg/qrcode"
)

func main() {
	opts, err := config.Get(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "neoqr: %v\n", err)
		os.Exit(2)
	}

	logger.Init(logger.Config{Debug: opts.Debug})

	gen, err := qr.New(opts.Render)
	if err != nil {
		logger.Log.Errorf("Invalid configuration: %v", err)
		os.Exit(2)
	}

	if err := gen.Generate(opts.Data, opts.Logo, opts.Output); err != nil {
		logger.Log.Errorf("Failed to generate QR code: %v", err)
		os.Exit(1)
	}

	logger.Log.Infof("QR code generated: %s", opts.Output)
}
