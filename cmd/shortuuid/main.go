// Command shortuuid shortens and expands UUIDs from the command line.
//
// Usage:
//
//	shortuuid shorten f47ac10b-58cc-4372-a567-0e02b2c3d479
//	shortuuid expand 7rke2SAWaicSeSYzkhww6R
//	shortuuid convert --from hex --to base36 1a2b3c
//	shortuuid new --count 5 --v7 --pad
//
// The alphabet is chosen with --alphabet or SHORTUUID_ALPHABET and is either a preset
// name (base10, hex, base36, base58, base62, base64, base90) or the literal symbols of
// a custom alphabet.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	logger, err := newProductionLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		logger = zap.NewNop()
	}

	a := newApp(logger.Sugar())
	err = a.rootCmd().Execute()
	if err != nil {
		a.logger.Errorw("Command failed", "error", err)
	}
	_ = a.logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newProductionLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}
