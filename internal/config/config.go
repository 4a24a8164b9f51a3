// Package config builds the tool's configuration once at startup. Every
// command handler receives the resulting struct; nothing reads the
// environment after Load returns.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"

	"github.com/Genzer/bitbucklet/internal/api"
)

// Keyring identifiers. Secrets stored via 'cfg set-secret' and
// 'cfg set-session' live under these keys; environment variables win
// when both are present.
const (
	KeyringService      = "bitbucklet"
	KeyringClientSecret = "client_secret"
	KeyringCloudSession = "cloud_session"
)

// DotenvFileName is the default credentials file in the home directory.
const DotenvFileName = ".bitbucklet"

// Config holds everything a command handler needs.
type Config struct {
	Team         string
	ClientID     string
	ClientSecret string
	CloudSession string
	Debug        bool
}

// Load reads the configuration: a dotenv file first (explicit path, else
// ./.env, else ~/.bitbucklet), then the BITBUCKET_* environment, then the
// OS keyring for the two secrets.
func Load(dotenvPath string, debug bool) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil {
			return nil, api.ConfigError("failed to load credentials file %s: %v", dotenvPath, err)
		}
	} else {
		// Both optional; a missing file is not an error.
		_ = godotenv.Load(".env")
		if home, err := os.UserHomeDir(); err == nil {
			_ = godotenv.Load(filepath.Join(home, DotenvFileName))
		}
	}

	v := viper.New()
	v.SetEnvPrefix("bitbucket")
	v.AutomaticEnv()

	cfg := &Config{
		Team:         v.GetString("team"),
		ClientID:     v.GetString("client_id"),
		ClientSecret: v.GetString("client_secret"),
		CloudSession: v.GetString("cloud_session"),
		Debug:        debug,
	}

	// The keyring may be unavailable altogether (headless hosts, CI);
	// any failure reads as "nothing stored" and validation reports the
	// missing value instead.
	if cfg.ClientSecret == "" {
		if secret, err := keyring.Get(KeyringService, KeyringClientSecret); err == nil {
			cfg.ClientSecret = secret
		}
	}
	if cfg.CloudSession == "" {
		if session, err := keyring.Get(KeyringService, KeyringCloudSession); err == nil {
			cfg.CloudSession = session
		}
	}

	return cfg, nil
}

// Validate checks the fields every bearer-authenticated command needs.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Team, validation.Required.Error("set BITBUCKET_TEAM")),
		validation.Field(&c.ClientID, validation.Required.Error("set BITBUCKET_CLIENT_ID")),
		validation.Field(&c.ClientSecret, validation.Required.Error("set BITBUCKET_CLIENT_SECRET or run 'bitbucklet cfg set-secret'")),
	)
	if err != nil {
		return api.ConfigError("incomplete configuration: %v", err)
	}
	return nil
}

// StoreClientSecret saves the OAuth consumer secret in the OS keyring.
func StoreClientSecret(secret string) error {
	return keyring.Set(KeyringService, KeyringClientSecret, secret)
}

// StoreCloudSession saves the browser session cookie in the OS keyring.
func StoreCloudSession(session string) error {
	return keyring.Set(KeyringService, KeyringCloudSession, session)
}

const blankDotenv = `# Here are very important environment variables
# required by bitbucklet.

# If you don't have a dedicated Bitbucket App, simply
# create an OAuth2 Consumer in your Bitbucket Settings.
BITBUCKET_CLIENT_ID=
BITBUCKET_CLIENT_SECRET=

BITBUCKET_TEAM=

# Value of the cloud.session.token browser cookie.
# Only needed by the 'accesses' commands.
BITBUCKET_CLOUD_SESSION=
`

// WriteBlank writes the credentials template. An empty path means
// ~/.bitbucklet. Refuses to clobber an existing file unless overwrite is
// set. Returns the path written.
func WriteBlank(path string, overwrite bool) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(home, DotenvFileName)
	}

	if _, err := os.Stat(path); err == nil && !overwrite {
		return "", api.ConfigError("path %s is existing, use --overwrite to overwrite its content", path)
	}

	if err := os.WriteFile(path, []byte(blankDotenv), 0o600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
