package firebase

import (
	"encoding/json"
	"fmt"
	"os"

	"admin-claims/internal/config"
	"admin-claims/internal/domain/claims"

	"google.golang.org/api/option"
)

// Source is where the service-account credential comes from.
// It is either InMemory or FilePath.
type Source interface {
	// Describe is the line printed to the operator once the source is chosen.
	Describe() string
	ClientOption() (option.ClientOption, error)
	// ProjectID is the project named by the credential, if known before init.
	ProjectID() string

	isSource()
}

// InMemory is a credential assembled from environment variables.
type InMemory struct {
	Account config.ServiceAccount
}

func (InMemory) isSource() {}

func (InMemory) Describe() string {
	return "Using service account credentials from environment variables."
}

func (s InMemory) ProjectID() string { return s.Account.ProjectID }

// Document returns the JSON key document equivalent to the in-memory fields.
func (s InMemory) Document() ([]byte, error) {
	return json.Marshal(s.Account)
}

func (s InMemory) ClientOption() (option.ClientOption, error) {
	b, err := s.Document()
	if err != nil {
		return nil, err
	}
	return option.WithCredentialsJSON(b), nil
}

// FilePath is a credential stored in a JSON key file.
type FilePath struct {
	Path string
}

func (FilePath) isSource() {}

func (s FilePath) Describe() string {
	return fmt.Sprintf("Using service account from file: %s", s.Path)
}

func (FilePath) ProjectID() string { return "" }

func (s FilePath) ClientOption() (option.ClientOption, error) {
	return option.WithCredentialsFile(s.Path), nil
}

// StatFunc has the signature of os.Stat.
type StatFunc func(name string) (os.FileInfo, error)

// Resolve picks the credential source for cfg.
// Complete in-memory fields win and the file path is then never looked at.
// Otherwise an existing key file is used. With neither, ErrCredentialMissing.
func Resolve(cfg config.Config, stat StatFunc) (Source, error) {
	if cfg.ServiceAccount.Complete() {
		return InMemory{Account: cfg.ServiceAccount}, nil
	}
	if cfg.ServiceAccountPath != "" && fileExists(stat, cfg.ServiceAccountPath) {
		return FilePath{Path: cfg.ServiceAccountPath}, nil
	}
	return nil, claims.ErrCredentialMissing
}

func fileExists(stat StatFunc, path string) bool {
	if stat == nil {
		stat = os.Stat
	}
	fi, err := stat(path)
	if err != nil {
		return false
	}
	return !fi.IsDir()
}
