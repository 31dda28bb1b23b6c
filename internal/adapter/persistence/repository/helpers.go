package repository

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"staffing_service/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// dynamoAPI is the part of *dynamodb.Client the repositories use.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// versionCondition guards a put: a new item must not exist, an existing one
// must still carry the version that was read.
func versionCondition(readVersion int64) (*string, map[string]string, map[string]types.AttributeValue) {
	if readVersion == 0 {
		return aws.String("attribute_not_exists(#id)"), map[string]string{"#id": "id"}, nil
	}
	return aws.String("#version = :expected"),
		map[string]string{"#version": "version"},
		map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(readVersion, 10)},
		}
}

// conditionalPut writes item when the stored version still equals readVersion.
func conditionalPut(ctx context.Context, ddb dynamoAPI, table string, item map[string]types.AttributeValue, readVersion int64) error {
	cond, names, values := versionCondition(readVersion)
	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(table),
		Item:                      item,
		ConditionExpression:       cond,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return translateWriteError(err)
}

func transactPut(table string, item map[string]types.AttributeValue, readVersion int64) types.TransactWriteItem {
	cond, names, values := versionCondition(readVersion)
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:                 aws.String(table),
			Item:                      item,
			ConditionExpression:       cond,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		},
	}
}

func getItem(ctx context.Context, ddb dynamoAPI, table, id string) (map[string]types.AttributeValue, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

// scanAll reads every page of a scan, optionally narrowed by an equality
// filter on a single attribute.
func scanAll(ctx context.Context, ddb dynamoAPI, table, attr, value string) ([]map[string]types.AttributeValue, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(table)}
	if attr != "" {
		in.FilterExpression = aws.String("#attr = :value")
		in.ExpressionAttributeNames = map[string]string{"#attr": attr}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":value": &types.AttributeValueMemberS{Value: value},
		}
	}

	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return entities.ErrConcurrentModification
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
				return entities.ErrConcurrentModification
			}
		}
	}
	return err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
