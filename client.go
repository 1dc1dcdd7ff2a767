package dynstring

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// NewSSMClient builds a client from the AWS default config chain. It should
// be called once per process and shared between invocations.
func NewSSMClient(ctx context.Context, cfg Config) (*ssm.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOptions(cfg)...)
	if err != nil {
		return nil, err
	}
	return ssm.NewFromConfig(awsCfg), nil
}

func loadOptions(cfg Config) []func(*config.LoadOptions) error {
	opts := []func(*config.LoadOptions) error{
		config.WithRetryer(singleAttemptRetryer),
	}
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	return opts
}

// A failed read is reported straight back to the caller.
func singleAttemptRetryer() aws.Retryer {
	return retry.AddWithMaxAttempts(retry.NewStandard(), 1)
}
