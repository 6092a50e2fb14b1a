package dynamo

import (
	"context"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clipcache/itemstore"
	"github.com/hupe1980/clipcache/model"
)

func tagStrings(tags []model.TypeTag) []string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = string(tag)
	}
	return out
}

// mockClient is an in-memory DynamoDB mock for testing.
type mockClient struct {
	mu    sync.RWMutex
	items map[string]map[string]types.AttributeValue // item_id:type_tag -> row
}

func newMockClient() *mockClient {
	return &mockClient{
		items: make(map[string]map[string]types.AttributeValue),
	}
}

func rowKey(key map[string]types.AttributeValue) string {
	id := key["item_id"].(*types.AttributeValueMemberN).Value
	tag := key["type_tag"].(*types.AttributeValueMemberS).Value
	return id + ":" + tag
}

func (m *mockClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[rowKey(params.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (m *mockClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[rowKey(params.Item)] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (m *mockClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, rowKey(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (m *mockClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id := params.ExpressionAttributeValues[":id"].(*types.AttributeValueMemberN).Value

	var items []map[string]types.AttributeValue
	for _, item := range m.items {
		if item["item_id"].(*types.AttributeValueMemberN).Value == id {
			items = append(items, item)
		}
	}
	return &dynamodb.QueryOutput{Items: items}, nil
}

func TestDynamoStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newMockClient(), "clipcache-items")

	_, err := s.Load(ctx, 1, "text/plain")
	assert.ErrorIs(t, err, itemstore.ErrNotFound)

	require.NoError(t, s.Put(ctx, 1, "text/plain", []byte("hello")))

	got, err := s.Load(ctx, 1, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestDynamoStore_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newMockClient(), "clipcache-items")

	require.NoError(t, s.Put(ctx, 1, "text/plain", []byte("a")))
	require.NoError(t, s.Put(ctx, 1, "text/html", []byte("b")))
	require.NoError(t, s.Put(ctx, 2, "image/png", []byte("c")))

	tags, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"text/plain", "text/html"}, tagStrings(tags))

	require.NoError(t, s.Delete(ctx, 1, "text/plain"))
	require.NoError(t, s.Delete(ctx, 1, "text/plain")) // idempotent

	_, err = s.Load(ctx, 1, "text/plain")
	assert.ErrorIs(t, err, itemstore.ErrNotFound)
}
