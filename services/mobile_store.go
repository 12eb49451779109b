package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DefaultCaloriesTarget is used whenever a user document has no usable
// caloriesTarget attribute.
const DefaultCaloriesTarget = 2000.0

// MobileStore reads and writes the DynamoDB collections the mobile app
// maintains. The admin backend treats daily logs as read-only and only ever
// soft-deletes user content.
type MobileStore struct {
	client *dynamodb.Client
	prefix string
}

func NewMobileStore(client *dynamodb.Client, tablePrefix string) *MobileStore {
	return &MobileStore{client: client, prefix: tablePrefix}
}

func (m *MobileStore) table(name string) string { return m.prefix + name }

// ---------- users ----------

func (m *MobileStore) Users(ctx context.Context) ([]models.MobileUser, error) {
	var users []models.MobileUser
	var startKey map[string]types.AttributeValue
	for {
		out, err := m.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(m.table("mobile_users")),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: scanning mobile users: %v", ErrUnavailable, err)
		}
		for _, item := range out.Items {
			normalizeTimestamps(item, "createdAt")
		}
		var page []models.MobileUser
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("decoding mobile users: %w", err)
		}
		users = append(users, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return users, nil
}

func (m *MobileStore) User(ctx context.Context, userID string) (*models.MobileUser, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrNotFound)
	}
	out, err := m.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(m.table("mobile_users")),
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: reading mobile user: %v", ErrUnavailable, err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("%w: mobile user %q", ErrNotFound, userID)
	}
	normalizeTimestamps(out.Item, "createdAt")
	var user models.MobileUser
	if err := attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return nil, fmt.Errorf("decoding mobile user: %w", err)
	}
	return &user, nil
}

// UserCaloriesTarget never fails: an absent user, a missing attribute or a
// malformed value all come back as the default target.
func (m *MobileStore) UserCaloriesTarget(ctx context.Context, userID string) float64 {
	if userID == "" {
		return DefaultCaloriesTarget
	}
	out, err := m.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(m.table("mobile_users")),
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
		},
		ProjectionExpression: aws.String("caloriesTarget"),
	})
	if err != nil || out.Item == nil {
		return DefaultCaloriesTarget
	}
	return parseCaloriesTarget(out.Item["caloriesTarget"])
}

// ClearDeviceToken removes the push token from a user document after the
// provider reported it as permanently invalid.
func (m *MobileStore) ClearDeviceToken(ctx context.Context, userID string) error {
	_, err := m.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(m.table("mobile_users")),
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression: aws.String("REMOVE fcmToken"),
	})
	if err != nil {
		return fmt.Errorf("%w: clearing device token for %s: %v", ErrUnavailable, userID, err)
	}
	return nil
}

// ---------- daily logs ----------

// UserDailyLogs returns the most recent limit logs re-sorted ascending by date
// for charting. An empty userID yields an empty slice, not an error.
func (m *MobileStore) UserDailyLogs(ctx context.Context, userID string, limit int) ([]models.DailyLog, error) {
	if userID == "" {
		return nil, nil
	}
	input := &dynamodb.QueryInput{
		TableName:              aws.String(m.table("daily_logs")),
		KeyConditionExpression: aws.String("userId = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		// Newest dates first, truncated server-side.
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}
	out, err := m.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: querying daily logs: %v", ErrUnavailable, err)
	}
	for _, item := range out.Items {
		normalizeTimestamps(item, "updatedAt")
	}
	var logs []models.DailyLog
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &logs); err != nil {
		return nil, fmt.Errorf("decoding daily logs: %w", err)
	}
	sortLogsByDate(logs)
	return logs, nil
}

// AllUserDailyLogs returns every log for the user, ascending by date.
func (m *MobileStore) AllUserDailyLogs(ctx context.Context, userID string) ([]models.DailyLog, error) {
	if userID == "" {
		return nil, nil
	}
	var logs []models.DailyLog
	var startKey map[string]types.AttributeValue
	for {
		out, err := m.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(m.table("daily_logs")),
			KeyConditionExpression: aws.String("userId = :uid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid": &types.AttributeValueMemberS{Value: userID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: querying daily logs: %v", ErrUnavailable, err)
		}
		for _, item := range out.Items {
			normalizeTimestamps(item, "updatedAt")
		}
		var page []models.DailyLog
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("decoding daily logs: %w", err)
		}
		logs = append(logs, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sortLogsByDate(logs)
	return logs, nil
}

// ---------- user content ----------

func (m *MobileStore) Posts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := m.scanAll(ctx, "posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (m *MobileStore) Reviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := m.scanAll(ctx, "reviews", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (m *MobileStore) UserRecipes(ctx context.Context) ([]models.UserRecipe, error) {
	var recipes []models.UserRecipe
	if err := m.scanAll(ctx, "user_recipes", &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (m *MobileStore) SoftDeletePost(ctx context.Context, id string) error {
	return m.softDelete(ctx, "posts", id)
}

func (m *MobileStore) SoftDeleteReview(ctx context.Context, id string) error {
	return m.softDelete(ctx, "reviews", id)
}

func (m *MobileStore) SoftDeleteUserRecipe(ctx context.Context, id string) error {
	return m.softDelete(ctx, "user_recipes", id)
}

// ---------- catalog mirror ----------

func (m *MobileStore) MirrorFoodItem(ctx context.Context, item models.MirrorFoodItem) error {
	return m.putItem(ctx, "food_items_mirror", item)
}

func (m *MobileStore) DeleteFoodItemMirror(ctx context.Context, id string) error {
	return m.deleteItem(ctx, "food_items_mirror", id)
}

func (m *MobileStore) MirrorCategory(ctx context.Context, category models.MirrorCategory) error {
	return m.putItem(ctx, "categories_mirror", category)
}

func (m *MobileStore) DeleteCategoryMirror(ctx context.Context, id string) error {
	return m.deleteItem(ctx, "categories_mirror", id)
}

// ---------- helpers ----------

func (m *MobileStore) scanAll(ctx context.Context, table string, dest any) error {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := m.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(m.table(table)),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return fmt.Errorf("%w: scanning %s: %v", ErrUnavailable, table, err)
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	for _, item := range items {
		normalizeTimestamps(item, "createdAt")
	}
	if err := attributevalue.UnmarshalListOfMaps(items, dest); err != nil {
		return fmt.Errorf("decoding %s: %w", table, err)
	}
	return nil
}

func (m *MobileStore) softDelete(ctx context.Context, table, id string) error {
	_, err := m.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(m.table(table)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String("SET deleted = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		var cond *types.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return fmt.Errorf("%w: %s %q", ErrNotFound, table, id)
		}
		return fmt.Errorf("%w: soft-deleting %s %q: %v", ErrUnavailable, table, id, err)
	}
	return nil
}

func (m *MobileStore) putItem(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("encoding %s item: %w", table, err)
	}
	_, err = m.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(m.table(table)),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrUnavailable, table, err)
	}
	return nil
}

func (m *MobileStore) deleteItem(ctx context.Context, table, id string) error {
	_, err := m.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(m.table(table)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: deleting from %s: %v", ErrUnavailable, table, err)
	}
	return nil
}

// normalizeTimestamps rewrites timestamp attributes to epoch-millisecond
// numbers so documents written with store-native timestamp strings decode the
// same as ones written with numbers.
func normalizeTimestamps(item map[string]types.AttributeValue, keys ...string) {
	for _, k := range keys {
		av, ok := item[k]
		if !ok {
			continue
		}
		if _, isNumber := av.(*types.AttributeValueMemberN); isNumber {
			continue
		}
		item[k] = &types.AttributeValueMemberN{
			Value: strconv.FormatInt(parseTimestampMillis(av), 10),
		}
	}
}

// parseCaloriesTarget accepts a number attribute or a numeric string; anything
// else falls back to the default target.
func parseCaloriesTarget(av types.AttributeValue) float64 {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		if f, err := strconv.ParseFloat(v.Value, 64); err == nil && f > 0 {
			return f
		}
	case *types.AttributeValueMemberS:
		if f, err := strconv.ParseFloat(v.Value, 64); err == nil && f > 0 {
			return f
		}
	}
	return DefaultCaloriesTarget
}

// parseTimestampMillis accepts epoch milliseconds (number) or an RFC3339
// string, the two shapes the mobile client has historically written.
func parseTimestampMillis(av types.AttributeValue) int64 {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		if n, err := strconv.ParseInt(v.Value, 10, 64); err == nil {
			return n
		}
	case *types.AttributeValueMemberS:
		if t, err := time.Parse(time.RFC3339, v.Value); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}

func sortLogsByDate(logs []models.DailyLog) {
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date < logs[j].Date })
}
