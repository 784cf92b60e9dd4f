// Package gateway adapts AWS Lambda events to plain request payloads and
// builds API Gateway proxy responses.
//
// A function behind API Gateway receives its payload in the "body" field of
// the proxy event, either as a JSON string (optionally base64-encoded) or,
// with some integrations, as an object. A function invoked directly receives
// the payload as the event itself. Payload hides the difference:
//
//	func handle(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
//		var req EmailRequest
//		if err := gateway.Decode(event, &req); err != nil {
//			return gateway.Error(http.StatusBadRequest, err.Error()), nil
//		}
//		...
//		return gateway.JSON(http.StatusOK, result), nil
//	}
//
// All responses carry Access-Control-Allow-Origin: * so browser clients can
// call the function URL directly.
package gateway
