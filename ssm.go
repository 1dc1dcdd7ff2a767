package dynstring

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
)

// ParameterName is the SSM parameter holding the string served by the
// handler. It is created and updated outside this program.
const ParameterName = "merapar_challenge-dynamic_string"

// ErrFetch wraps every failure to read ParameterName from the store.
var ErrFetch = errors.New("failed to fetch dynamic string")

type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

func GetParameterCommand() *ssm.GetParameterInput {
	return &ssm.GetParameterInput{
		Name:           aws.String(ParameterName),
		WithDecryption: aws.Bool(false),
	}
}

// GetDynamicString reads the current value of ParameterName. The value is
// never cached; each call goes to the store.
func GetDynamicString(ctx context.Context, c SSMClient) (string, error) {
	resp, err := c.GetParameter(ctx, GetParameterCommand())
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrFetch, ParameterName, err)
	}
	if resp == nil || resp.Parameter == nil || resp.Parameter.Value == nil {
		return "", fmt.Errorf("%w %q: parameter has no value", ErrFetch, ParameterName)
	}
	return *resp.Parameter.Value, nil
}

func IsParameterNotFound(err error) bool {
	var notFound *types.ParameterNotFound
	return errors.As(err, &notFound)
}

func IsAccessDenied(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "AccessDeniedException"
	}
	return false
}
