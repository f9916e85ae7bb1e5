package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/cinema_tickets/pkg/validate"
)

// CLI для офлайн-проверки запросов на покупку без оплаты и бронирования.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads JSONL from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	format := validate.InputFormat(*formatStr)

	var (
		res validate.JSONLResult
		err error
	)
	if *inputPath == "" {
		res, err = validate.QuoteReader(ctx, os.Stdin, format, os.Stdout)
	} else {
		res, err = validate.QuoteFile(ctx, *inputPath, format, os.Stdout)
	}

	for _, le := range res.Errors {
		fmt.Fprintf(os.Stderr, "line %d: %v\n", le.Line, le.Err)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "quote: %v (%s)\n", err, res.Summary())
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "quote done (%s)\n", res.Summary())
	if res.InvalidLinesCount > 0 {
		os.Exit(2)
	}
}
