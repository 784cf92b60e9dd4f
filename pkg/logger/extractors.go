package logger

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// LambdaRequestID adds aws_request_id for records logged inside a Lambda
// invocation.
func LambdaRequestID() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		lc, ok := lambdacontext.FromContext(ctx)
		if !ok || lc.AwsRequestID == "" {
			return slog.Attr{}, false
		}
		return slog.String("aws_request_id", lc.AwsRequestID), true
	}
}

// Static always adds the given attribute.
func Static(key, value string) ContextExtractor {
	return func(context.Context) (slog.Attr, bool) {
		return slog.String(key, value), true
	}
}
