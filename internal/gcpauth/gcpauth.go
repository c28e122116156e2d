// Package gcpauth resolves Google Cloud defaults shared by the gcd and fs backends.
package gcpauth

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Credential source descriptions reported in datastore.Settings.
const (
	SourceEmulator           = "none (emulator)"
	SourceApplicationDefault = "application default credentials"
)

// ProjectFromCredentials returns the project id carried by the credentials
// found through Application Default Credentials. When credentialsFile is set it
// is read instead of running the full ADC search.
func ProjectFromCredentials(ctx context.Context, credentialsFile string, scopes ...string) (string, error) {
	var (
		creds *google.Credentials
		err   error
	)
	if credentialsFile != "" {
		data, readErr := os.ReadFile(credentialsFile)
		if readErr != nil {
			return "", fmt.Errorf("read credentials file: %w", readErr)
		}
		creds, err = google.CredentialsFromJSON(ctx, data, scopes...)
	} else {
		creds, err = google.FindDefaultCredentials(ctx, scopes...)
	}
	if err != nil {
		return "", err
	}
	if creds.ProjectID == "" {
		return "", fmt.Errorf("credentials do not name a project")
	}
	return creds.ProjectID, nil
}

// ClientOptions returns the options that point a Google client at an emulator
// or at an explicit credentials file. It returns nil when the library defaults apply.
func ClientOptions(emulatorHost, credentialsFile string) []option.ClientOption {
	if emulatorHost != "" {
		return []option.ClientOption{
			option.WithEndpoint(emulatorHost),
			option.WithoutAuthentication(),
			option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		}
	}
	if credentialsFile != "" {
		return []option.ClientOption{option.WithCredentialsFile(credentialsFile)}
	}
	return nil
}

// CredentialSource describes where a client's credentials come from.
func CredentialSource(emulatorHost, credentialsFile string) string {
	switch {
	case emulatorHost != "":
		return SourceEmulator
	case credentialsFile != "":
		return "file " + credentialsFile
	default:
		return SourceApplicationDefault
	}
}
