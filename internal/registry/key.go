package registry

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

func MarshalKey[T any](key T) (string, error) {

	jsonMarshalled, err := json.Marshal(key)

	if err != nil {
		return "", fmt.Errorf("failed to json marshall page key - %w", err)
	}

	return base64.StdEncoding.EncodeToString(jsonMarshalled), nil
}

func UnmarshalKey[T any](nextToken string, key *T) error {

	decoded, err := base64.StdEncoding.DecodeString(nextToken)

	if err != nil {
		return fmt.Errorf("failed to decode base64 nextToken - %w", err)
	}

	err = json.Unmarshal(decoded, key)

	if err != nil {
		return fmt.Errorf("failed to json unmarshall nextToken - %w", err)
	}

	return nil
}
