package gateway

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Payload extracts the request payload from a Lambda event.
//
// A non-empty "body" string is returned as-is, or base64-decoded when
// "isBase64Encoded" is true. A non-empty "body" object is returned as its raw
// JSON. In every other case the event itself is the payload.
func Payload(event json.RawMessage) ([]byte, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(event, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	body, ok := envelope["body"]
	if !ok {
		return event, nil
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return event, nil
	}

	switch body[0] {
	case '"':
		var s string
		if err := json.Unmarshal(body, &s); err != nil {
			return nil, fmt.Errorf("%w: body: %v", ErrInvalidEvent, err)
		}
		if s == "" {
			return event, nil
		}
		if isBase64(envelope) {
			decoded, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return nil, fmt.Errorf("%w: body: %v", ErrInvalidEvent, err)
			}
			return decoded, nil
		}
		return []byte(s), nil

	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil {
			return nil, fmt.Errorf("%w: body: %v", ErrInvalidEvent, err)
		}
		if len(obj) == 0 {
			return event, nil
		}
		return body, nil

	default:
		// null, false, 0 and empty arrays count as absent.
		if isFalsy(body) {
			return event, nil
		}
		return nil, fmt.Errorf("%w: body must be a string or an object", ErrInvalidEvent)
	}
}

// Decode unmarshals the event payload into v.
func Decode(event json.RawMessage, v any) error {
	payload, err := Payload(event)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

func isBase64(envelope map[string]json.RawMessage) bool {
	var b bool
	_ = json.Unmarshal(envelope["isBase64Encoded"], &b)
	return b
}

func isFalsy(raw json.RawMessage) bool {
	switch string(raw) {
	case "null", "false", "0", "[]":
		return true
	}
	return false
}
