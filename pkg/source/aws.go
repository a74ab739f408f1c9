package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/awnumar/memguard"

	"github.com/systmms/shroud/pkg/secret"
)

// SecretsAPI is the slice of the AWS Secrets Manager client this source
// needs, kept as an interface so tests can inject a fake.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// AWS resolves keys as AWS Secrets Manager secret IDs.
type AWS struct {
	name   string
	region string
	client SecretsAPI
}

// AWSOption configures an AWS source.
type AWSOption func(*AWS)

// WithSecretsClient substitutes the Secrets Manager client, primarily for
// tests and LocalStack endpoints.
func WithSecretsClient(c SecretsAPI) AWSOption {
	return func(a *AWS) { a.client = c }
}

// NewAWS returns a Secrets Manager source for region. Unless a client is
// injected, credentials and shared config are loaded the default SDK way
// (env, shared files, IMDS).
func NewAWS(ctx context.Context, name, region string, opts ...AWSOption) (*AWS, error) {
	a := &AWS{name: name, region: region}
	for _, opt := range opts {
		opt(a)
	}
	if a.client == nil {
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
		if err != nil {
			return nil, fmt.Errorf("source %q: loading AWS config: %w", name, err)
		}
		a.client = secretsmanager.NewFromConfig(cfg)
	}
	return a, nil
}

// Name returns the source identifier.
func (a *AWS) Name() string { return a.name }

// Resolve fetches the secret value for key (a secret name or ARN). String
// secrets are wrapped directly; binary secrets are wrapped as their UTF-8
// bytes and the SDK's copy is wiped.
func (a *AWS) Resolve(ctx context.Context, key string) (*secret.Secret[string], error) {
	out, err := a.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(key),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return nil, &NotFoundError{Source: a.name, Key: key}
		}
		return nil, fmt.Errorf("source %q: get secret value %q: %w", a.name, key, err)
	}

	if out.SecretString != nil {
		return wrap(*out.SecretString)
	}
	if out.SecretBinary != nil {
		s, err := wrap(string(out.SecretBinary))
		memguard.WipeBytes(out.SecretBinary)
		return s, err
	}
	return nil, &NotFoundError{Source: a.name, Key: key}
}
