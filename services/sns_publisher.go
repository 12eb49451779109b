package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SNSPublisher delivers admin notifications to FCM devices through an SNS
// platform application. Raw device tokens are exchanged for platform endpoint
// ARNs on first use; CreatePlatformEndpoint is idempotent so the cache is
// only an optimization.
type SNSPublisher struct {
	client      *awssns.Client
	platformARN string

	mu        sync.Mutex
	endpoints map[string]string // token -> endpoint ARN
}

func NewSNSPublisher(client *awssns.Client, platformARN string) *SNSPublisher {
	return &SNSPublisher{
		client:      client,
		platformARN: platformARN,
		endpoints:   make(map[string]string),
	}
}

const notificationChannel = "admin_notifications"

func (s *SNSPublisher) Publish(ctx context.Context, token, title, body string, data map[string]string) error {
	arn, err := s.endpointARN(ctx, token)
	if err != nil {
		return err
	}

	msg := map[string]any{
		"default": body,
		"GCM": map[string]any{
			"priority": "high",
			"notification": map[string]string{
				"title":              title,
				"body":               body,
				"sound":              "default",
				"android_channel_id": notificationChannel,
				"visibility":         "public",
			},
			"data": data,
		},
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	_, err = s.client.Publish(ctx, &awssns.PublishInput{
		MessageStructure: aws.String("json"),
		Message:          aws.String(string(raw)),
		TargetArn:        aws.String(arn),
	})
	if err != nil {
		if isTokenGone(err) {
			// Stale cache entry; a later send for the same token should
			// re-register instead of reusing the dead endpoint.
			s.mu.Lock()
			delete(s.endpoints, token)
			s.mu.Unlock()
			return fmt.Errorf("%w: %v", ErrTokenNotRegistered, err)
		}
		return fmt.Errorf("sns publish failed: %w", err)
	}
	return nil
}

func (s *SNSPublisher) endpointARN(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	arn, ok := s.endpoints[token]
	s.mu.Unlock()
	if ok {
		return arn, nil
	}

	if s.platformARN == "" {
		return "", fmt.Errorf("%w: SNS platform application not configured", ErrUnavailable)
	}
	out, err := s.client.CreatePlatformEndpoint(ctx, &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(s.platformARN),
		Token:                  aws.String(token),
	})
	if err != nil {
		if isTokenGone(err) {
			return "", fmt.Errorf("%w: %v", ErrTokenNotRegistered, err)
		}
		return "", fmt.Errorf("%w: creating platform endpoint: %v", ErrUnavailable, err)
	}

	arn = aws.ToString(out.EndpointArn)
	s.mu.Lock()
	s.endpoints[token] = arn
	s.mu.Unlock()
	return arn, nil
}

// isTokenGone reports whether the provider error means the device token is
// permanently invalid (disabled endpoint or endpoint removed), as opposed to
// a transient delivery problem.
func isTokenGone(err error) bool {
	var disabled *snstypes.EndpointDisabledException
	if errors.As(err, &disabled) {
		return true
	}
	var notFound *snstypes.NotFoundException
	if errors.As(err, &notFound) {
		return true
	}
	var invalid *snstypes.InvalidParameterException
	return errors.As(err, &invalid)
}
