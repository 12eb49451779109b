package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"
)

// ErrTokenNotRegistered is returned by a Publisher when the provider reports
// a device token as permanently invalid. The fan-out prunes such tokens.
var ErrTokenNotRegistered = errors.New("device token not registered")

// NewUserWindow bounds the "new users" audience.
const NewUserWindow = 30 * 24 * time.Hour

// Publisher delivers one notification to one device token.
type Publisher interface {
	Publish(ctx context.Context, token, title, body string, data map[string]string) error
}

// TokenStore is the slice of the document store the fan-out needs.
// Satisfied by *MobileStore; faked in tests.
type TokenStore interface {
	Users(ctx context.Context) ([]models.MobileUser, error)
	ClearDeviceToken(ctx context.Context, userID string) error
}

type PushService struct {
	publisher Publisher
	tokens    TokenStore
	now       func() time.Time
}

func NewPushService(publisher Publisher, tokens TokenStore) *PushService {
	return &PushService{publisher: publisher, tokens: tokens, now: time.Now}
}

// SendToAll fans the message out to every device token on record and returns
// the number of successful deliveries.
func (p *PushService) SendToAll(ctx context.Context, title, message string) (int, error) {
	users, err := p.tokens.Users(ctx)
	if err != nil {
		return 0, err
	}
	return p.send(ctx, users, title, message)
}

// SendToActive targets active users. Active means "has a device token", so
// today this is the same audience as SendToAll minus tokenless documents; the
// send loop skips those anyway.
func (p *PushService) SendToActive(ctx context.Context, title, message string) (int, error) {
	return p.SendToAll(ctx, title, message)
}

// SendToNew targets users created within the last 30 days. Users whose
// documents carry no creation timestamp are conservatively treated as new.
func (p *PushService) SendToNew(ctx context.Context, title, message string) (int, error) {
	users, err := p.tokens.Users(ctx)
	if err != nil {
		return 0, err
	}
	cutoff := p.now().Add(-NewUserWindow).UnixMilli()
	audience := make([]models.MobileUser, 0, len(users))
	for _, user := range users {
		if user.CreatedAt == 0 || user.CreatedAt >= cutoff {
			audience = append(audience, user)
		}
	}
	return p.send(ctx, audience, title, message)
}

// send walks the audience sequentially. Empty tokens are skipped silently,
// per-token provider failures never abort the batch, and tokens the provider
// reports as unregistered are cleared from the user documents afterwards
// (best effort).
func (p *PushService) send(ctx context.Context, audience []models.MobileUser, title, message string) (int, error) {
	data := map[string]string{
		"title":   title,
		"message": message,
		"type":    "admin_notification",
	}

	sent := 0
	var invalid []models.MobileUser
	for _, user := range audience {
		if user.FCMToken == "" {
			continue
		}
		err := p.publisher.Publish(ctx, user.FCMToken, title, message, data)
		if err == nil {
			sent++
			continue
		}
		if errors.Is(err, ErrTokenNotRegistered) {
			invalid = append(invalid, user)
			continue
		}
		log.Printf("push to user %s failed: %v", user.UserID, err)
	}

	for _, user := range invalid {
		if err := p.tokens.ClearDeviceToken(ctx, user.UserID); err != nil {
			log.Printf("failed to clear invalid token for user %s: %v", user.UserID, err)
		}
	}

	return sent, nil
}

// Notification is what gets stored in the provider payload for each send.
// Exposed for the controller's dry-run/preview endpoint.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (n Notification) Validate() error {
	if n.Title == "" || n.Message == "" {
		return fmt.Errorf("title and message are required")
	}
	return nil
}
