package dynstring

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	log "github.com/sirupsen/logrus"
)

// Handler serves the current value of ParameterName as an HTML page.
type Handler struct {
	Client SSMClient
	Logger *log.Logger
}

type HandlerOptions func(h Handler) Handler

func NewHandler(c SSMClient, opts ...HandlerOptions) Handler {
	h := Handler{
		Client: c,
		Logger: log.StandardLogger(),
	}
	for _, opt := range opts {
		h = opt(h)
	}
	return h
}

func WithLogger(logger *log.Logger) HandlerOptions {
	return func(h Handler) Handler {
		h.Logger = logger
		return h
	}
}

// Handle ignores the triggering event. Fetch failures are returned as is so
// the Lambda runtime reports them with its default error response.
func (h Handler) Handle(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	entry := h.Logger.WithField("parameter", ParameterName)
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		entry = entry.WithField("request_id", lc.AwsRequestID)
	}

	value, err := GetDynamicString(ctx, h.Client)
	if err != nil {
		entry.WithFields(log.Fields{
			"not_found":     IsParameterNotFound(err),
			"access_denied": IsAccessDenied(err),
		}).WithError(err).Error("fetch failed")
		return events.APIGatewayProxyResponse{}, err
	}
	entry.Debug("fetched dynamic string")

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type": "text/html",
		},
		Body: Render(value),
	}, nil
}
