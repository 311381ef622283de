package config

import (
	"os"
	"strings"
)

// ServiceAccount mirrors the fields of a Google service-account JSON key.
type ServiceAccount struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
	UniverseDomain          string `json:"universe_domain"`
}

// Complete reports whether every field is set.
func (sa ServiceAccount) Complete() bool {
	for _, v := range []string{
		sa.Type,
		sa.ProjectID,
		sa.PrivateKeyID,
		sa.PrivateKey,
		sa.ClientEmail,
		sa.ClientID,
		sa.AuthURI,
		sa.TokenURI,
		sa.AuthProviderX509CertURL,
		sa.ClientX509CertURL,
		sa.UniverseDomain,
	} {
		if v == "" {
			return false
		}
	}
	return true
}

// Config holds the options recognized from the environment.
type Config struct {
	ServiceAccount     ServiceAccount
	ServiceAccountPath string
	AdminUserUID       string
	MirrorCollection   string
}

// Load reads Config from the process environment. UIDs are passed through as-is.
func Load() Config {
	sa := ServiceAccount{
		Type:                    getenv("FIREBASE_ADMIN_TYPE", ""),
		ProjectID:               getenv("FIREBASE_ADMIN_PROJECT_ID", ""),
		PrivateKeyID:            getenv("FIREBASE_ADMIN_PRIVATE_KEY_ID", ""),
		PrivateKey:              UnescapeKey(getenv("FIREBASE_ADMIN_PRIVATE_KEY", "")),
		ClientEmail:             getenv("FIREBASE_ADMIN_CLIENT_EMAIL", ""),
		ClientID:                getenv("FIREBASE_ADMIN_CLIENT_ID", ""),
		AuthURI:                 getenv("FIREBASE_ADMIN_AUTH_URI", ""),
		TokenURI:                getenv("FIREBASE_ADMIN_TOKEN_URI", ""),
		AuthProviderX509CertURL: getenv("FIREBASE_ADMIN_AUTH_PROVIDER_X509_CERT_URL", ""),
		ClientX509CertURL:       getenv("FIREBASE_ADMIN_CLIENT_X509_CERT_URL", ""),
		UniverseDomain:          getenv("FIREBASE_ADMIN_UNIVERSE_DOMAIN", ""),
	}

	return Config{
		ServiceAccount:     sa,
		ServiceAccountPath: getenv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
		AdminUserUID:       getenv("ADMIN_USER_UID", ""),
		MirrorCollection:   strings.TrimSpace(getenv("ADMIN_CLAIM_MIRROR_COLLECTION", "")),
	}
}

// UnescapeKey turns literal "\n" sequences (as stored in .env files) into newlines.
func UnescapeKey(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
