// Package lambdafn adapts the invoice service to AWS Lambda.
//
// Both handlers accept either a direct invocation (the payload is the event)
// or an API Gateway proxy event (the payload is in "body"), and answer with
// an API Gateway proxy response carrying permissive CORS headers.
//
//	lambda.Start(lambdafn.NewEmailHandler(svc, log).Handle)
package lambdafn
