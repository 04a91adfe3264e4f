package sechub

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/endpoints"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/sechub/sechub-cli/internals/cli"
)

// ClientFactory handles creating a new Security Hub client with the configured options.
// The client is created once and reused for every following call.
type ClientFactory struct {
	Region      string
	Profile     string
	EndpointURL string
	MaxRetries  int

	client     securityhubiface.SecurityHubAPI
	newSession func(session.Options) (*session.Session, error)
}

// NewClientFactory creates a new ClientFactory.
func NewClientFactory() *ClientFactory {
	return &ClientFactory{
		MaxRetries: aws.UseServiceDefaultRetries,
		newSession: session.NewSessionWithOptions,
	}
}

// Register the flags for configuration on a cli application.
func (f *ClientFactory) Register(app *cli.App) {
	flags := app.PersistentFlags()
	flags.StringVar(&f.Region, "region", "", "The AWS region to send requests to. Defaults to the region of the AWS profile.")
	flags.StringVar(&f.Profile, "profile", "", "The AWS profile to use credentials and settings from.")
	flags.StringVar(&f.EndpointURL, "endpoint-url", "", "Send requests to the given URL instead of the default Security Hub endpoint.")
	flags.IntVar(&f.MaxRetries, "max-retries", aws.UseServiceDefaultRetries, "The maximum number of times a failed request is retried. Negative values use the service default.")
}

// NewClient returns a Security Hub client for the configured region and profile.
func (f *ClientFactory) NewClient() (securityhubiface.SecurityHubAPI, error) {
	if f.client != nil {
		return f.client, nil
	}

	if f.Region != "" && f.EndpointURL == "" {
		if _, ok := endpoints.PartitionForRegion(endpoints.DefaultPartitions(), f.Region); !ok {
			return nil, ErrInvalidAWSRegion(f.Region)
		}
	}

	config := aws.Config{
		MaxRetries: aws.Int(f.MaxRetries),
	}
	if f.Region != "" {
		config.Region = aws.String(f.Region)
	}
	if f.EndpointURL != "" {
		config.Endpoint = aws.String(f.EndpointURL)
	}

	sess, err := f.newSession(session.Options{
		Config:            config,
		Profile:           f.Profile,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, ErrCannotCreateSession(err)
	}
	if aws.StringValue(sess.Config.Region) == "" {
		return nil, ErrMissingRegion
	}

	f.client = securityhub.New(sess)
	return f.client, nil
}
