package dynstring_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/merapar/dynstring"
)

func TestGetParameterCommand(t *testing.T) {
	t.Parallel()
	got := dynstring.GetParameterCommand()
	want := &ssm.GetParameterInput{
		Name:           aws.String("merapar_challenge-dynamic_string"),
		WithDecryption: aws.Bool(false),
	}
	ignore := cmpopts.IgnoreUnexported(ssm.GetParameterInput{})
	if !cmp.Equal(got, want, ignore) {
		t.Error(cmp.Diff(want, got, ignore))
	}
}

func TestGetDynamicString_ReturnsStoredValue(t *testing.T) {
	t.Parallel()
	got, err := dynstring.GetDynamicString(context.Background(), helperDummySSMClient("some value", nil))
	if err != nil {
		t.Fatal(err)
	}
	if got != "some value" {
		t.Errorf("expected some value, got %q", got)
	}
}

func TestGetDynamicString_ReturnsFreshValueOnEveryCall(t *testing.T) {
	t.Parallel()
	value := aws.String("first")
	client := DummySSMClient{Value: value}
	got, err := dynstring.GetDynamicString(context.Background(), client)
	if err != nil {
		t.Fatal(err)
	}
	if got != "first" {
		t.Errorf("expected first, got %q", got)
	}
	*value = "second"
	got, err = dynstring.GetDynamicString(context.Background(), client)
	if err != nil {
		t.Fatal(err)
	}
	if got != "second" {
		t.Errorf("expected second, got %q", got)
	}
}

func TestGetDynamicString_MissingValueIsFetchError(t *testing.T) {
	t.Parallel()
	_, err := dynstring.GetDynamicString(context.Background(), DummySSMClient{})
	if !errors.Is(err, dynstring.ErrFetch) {
		t.Errorf("expected ErrFetch, got %v", err)
	}
}

func TestGetDynamicString_ClassifiesStoreErrors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		description  string
		err          error
		notFound     bool
		accessDenied bool
	}{
		{
			description: "parameter not found",
			err:         &types.ParameterNotFound{Message: aws.String("not found")},
			notFound:    true,
		},
		{
			description:  "access denied",
			err:          &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "not authorized to perform ssm:GetParameter"},
			accessDenied: true,
		},
		{
			description: "network error",
			err:         errors.New("dial tcp: i/o timeout"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()
			_, err := dynstring.GetDynamicString(context.Background(), helperDummySSMClient("", tc.err))
			if !errors.Is(err, dynstring.ErrFetch) {
				t.Errorf("expected ErrFetch, got %v", err)
			}
			if got := dynstring.IsParameterNotFound(err); got != tc.notFound {
				t.Errorf("IsParameterNotFound: want %t, got %t", tc.notFound, got)
			}
			if got := dynstring.IsAccessDenied(err); got != tc.accessDenied {
				t.Errorf("IsAccessDenied: want %t, got %t", tc.accessDenied, got)
			}
		})
	}
}
