package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/merapar/dynstring"
)

func main() {
	cfg, err := dynstring.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := dynstring.NewLogger(cfg, os.Stdout)
	client, err := dynstring.NewSSMClient(context.Background(), cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to create ssm client")
	}
	h := dynstring.NewHandler(client, dynstring.WithLogger(logger))
	lambda.Start(h.Handle)
}
