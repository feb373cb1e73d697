package devops

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// AppConfig is the deployment configuration: where the row store lives and
// how the outer surfaces are wired. The attendance settings themselves
// (factory coordinates, radius, PIN) live in the store and are re-read on
// every request; nothing here caches them.
type AppConfig struct {
	Port           string `yaml:"port"`
	DSN            string `yaml:"dsn"`
	MaxConnections int    `yaml:"maxConnections"`
	SigningSecret  string `yaml:"signingSecret"`
	TokenTTL       int64  `yaml:"tokenTTLSeconds"`

	Slack struct {
		InfoChannel  string `yaml:"infoChannel"`
		ErrorChannel string `yaml:"errorChannel"`
	} `yaml:"slack"`

	Report struct {
		Bucket string   `yaml:"bucket"`
		From   string   `yaml:"from"`
		To     []string `yaml:"to"`
	} `yaml:"report"`
}

var (
	once    sync.Once
	cfg     *AppConfig
	loadErr error
)

// LoadAppConfig reads the YAML config, once per process. FACTORYGATE_CONFIG
// names a local file; otherwise the "factorygate" SSM parameter is fetched.
// PORT and DSN env vars override either source.
func LoadAppConfig(ctx context.Context) (*AppConfig, error) {
	once.Do(func() {
		var raw []byte

		if path := os.Getenv("FACTORYGATE_CONFIG"); path != "" {
			raw, loadErr = os.ReadFile(path)
			if loadErr != nil {
				loadErr = fmt.Errorf("read config file: %w", loadErr)
				return
			}
		} else {
			raw, loadErr = fetchSSMParameter(ctx, "factorygate")
			if loadErr != nil {
				return
			}
		}

		var parsed AppConfig
		if err := yaml.Unmarshal(raw, &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		if v := os.Getenv("PORT"); v != "" {
			parsed.Port = v
		}
		if v := os.Getenv("DSN"); v != "" {
			parsed.DSN = v
		}
		if parsed.Port == "" {
			parsed.Port = "8090"
		}
		if parsed.MaxConnections <= 0 {
			parsed.MaxConnections = 10
		}
		if parsed.TokenTTL <= 0 {
			parsed.TokenTTL = 3600
		}

		cfg = &parsed
	})

	return cfg, loadErr
}

func fetchSSMParameter(ctx context.Context, name string) ([]byte, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := ssm.NewFromConfig(awsCfg)

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get parameter: %w", err)
	}

	return []byte(*out.Parameter.Value), nil
}
