package gateway

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// ErrorBody is the JSON body of a failed request.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// JSON builds a response with v encoded as the body.
func JSON(status int, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(fmt.Sprintf(`{"success":false,"error":%q}`, "failed to encode response"))
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers("application/json"),
		Body:       string(body),
	}
}

// Error builds a {"success": false, "error": msg} response.
func Error(status int, msg string) events.APIGatewayProxyResponse {
	return JSON(status, ErrorBody{Success: false, Error: msg})
}

// PDF builds a base64-encoded binary response displayed inline by browsers.
func PDF(filename string, data []byte) events.APIGatewayProxyResponse {
	h := headers("application/pdf")
	h["Content-Disposition"] = fmt.Sprintf("inline; filename=%s", filename)

	return events.APIGatewayProxyResponse{
		StatusCode:      http.StatusOK,
		Headers:         h,
		Body:            base64.StdEncoding.EncodeToString(data),
		IsBase64Encoded: true,
	}
}

func headers(contentType string) map[string]string {
	return map[string]string{
		"Content-Type":                contentType,
		"Access-Control-Allow-Origin": "*",
	}
}
