package dynamo

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/clipcache/itemstore"
	"github.com/hupe1980/clipcache/model"
)

// Client is the subset of the DynamoDB API used by Store. *dynamodb.Client
// satisfies it.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Store implements itemstore.Store backed by a DynamoDB table. It suits
// small blobs: DynamoDB caps items at 400 KB.
//
// Table schema:
//   - Partition key: item_id (number)
//   - Sort key: type_tag (string)
//   - Blob attribute: data (binary)
//
// Create the table with:
//
//	aws dynamodb create-table \
//	  --table-name clipcache-items \
//	  --attribute-definitions AttributeName=item_id,AttributeType=N AttributeName=type_tag,AttributeType=S \
//	  --key-schema AttributeName=item_id,KeyType=HASH AttributeName=type_tag,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type Store struct {
	client    Client
	tableName string
}

// NewStore creates a new DynamoDB item store.
func NewStore(client Client, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
	}
}

// NewFromDefaultConfig creates a Store using the default AWS credential
// and region chain.
func NewFromDefaultConfig(ctx context.Context, tableName string) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewStore(dynamodb.NewFromConfig(cfg), tableName), nil
}

func itemKey(id model.ItemID, tag model.TypeTag) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"item_id":  &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(id), 10)},
		"type_tag": &types.AttributeValueMemberS{Value: string(tag)},
	}
}

// Load reads the blob stored for (id, tag).
func (s *Store) Load(ctx context.Context, id model.ItemID, tag model.TypeTag) ([]byte, error) {
	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       itemKey(id, tag),
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Item) == 0 {
		return nil, itemstore.ErrNotFound
	}

	data, ok := resp.Item["data"].(*types.AttributeValueMemberB)
	if !ok {
		return nil, itemstore.ErrNotFound
	}
	return data.Value, nil
}

// Put writes the blob for (id, tag), replacing any previous value.
func (s *Store) Put(ctx context.Context, id model.ItemID, tag model.TypeTag, data []byte) error {
	item := itemKey(id, tag)
	item["data"] = &types.AttributeValueMemberB{Value: data}

	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	return err
}

// Delete removes the row for (id, tag). DynamoDB deletes are idempotent.
func (s *Store) Delete(ctx context.Context, id model.ItemID, tag model.TypeTag) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       itemKey(id, tag),
	})
	return err
}

// List returns the tags stored for id.
func (s *Store) List(ctx context.Context, id model.ItemID) ([]model.TypeTag, error) {
	var tags []model.TypeTag
	var startKey map[string]types.AttributeValue
	for {
		resp, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			KeyConditionExpression: aws.String("item_id = :id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":id": &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(id), 10)},
			},
			ProjectionExpression: aws.String("type_tag"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range resp.Items {
			if tag, ok := item["type_tag"].(*types.AttributeValueMemberS); ok {
				tags = append(tags, model.TypeTag(tag.Value))
			}
		}
		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		startKey = resp.LastEvaluatedKey
	}
	return tags, nil
}
