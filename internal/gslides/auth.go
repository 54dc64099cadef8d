package gslides

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// tokenFile is the shape of the stored OAuth token JSON.
type tokenFile struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
}

// LoadToken reads a bearer token for the Slides API. The GOOGLE_ACCESS_TOKEN
// environment variable wins; otherwise the credentials file is read, either
// as a token JSON ({"access_token": ...}) or as a bare token string.
// A missing or empty token is an *AuthError.
func LoadToken(credentialsFile string) (string, error) {
	if tok := strings.TrimSpace(os.Getenv("GOOGLE_ACCESS_TOKEN")); tok != "" {
		return tok, nil
	}
	if credentialsFile == "" {
		return "", &AuthError{Message: "no credentials file configured and GOOGLE_ACCESS_TOKEN is unset"}
	}

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &AuthError{Message: fmt.Sprintf("credentials file not found: %s", credentialsFile)}
		}
		return "", fmt.Errorf("read credentials %s: %w", credentialsFile, err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var tf tokenFile
		if err := json.Unmarshal(data, &tf); err != nil {
			return "", &AuthError{Message: fmt.Sprintf("malformed credentials file %s: %v", credentialsFile, err)}
		}
		if tf.AccessToken != "" {
			return tf.AccessToken, nil
		}
		if tf.Token != "" {
			return tf.Token, nil
		}
		return "", &AuthError{Message: fmt.Sprintf("credentials file %s carries no token", credentialsFile)}
	}

	if trimmed == "" {
		return "", &AuthError{Message: fmt.Sprintf("credentials file %s is empty", credentialsFile)}
	}
	return trimmed, nil
}
