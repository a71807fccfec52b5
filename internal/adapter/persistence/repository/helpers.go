package repository

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDB caps BatchGetItem at 100 keys per request.
const batchGetMaxKeys = 100

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// catalogKey builds the composite key shared by every per-store catalog
// table (store_id PK, id SK).
func catalogKey(storeID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"store_id": &types.AttributeValueMemberS{Value: storeID},
		"id":       &types.AttributeValueMemberS{Value: id},
	}
}

// batchGetByCatalogKeys resolves a set of ids against one catalog table,
// chunking to the BatchGetItem limit and draining unprocessed keys. Keys that
// do not exist (or belong to another store) simply do not come back.
func batchGetByCatalogKeys(
	ctx context.Context,
	ddb *dynamodb.Client,
	tableName, storeID string,
	ids []string,
) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue

	for start := 0; start < len(ids); start += batchGetMaxKeys {
		end := start + batchGetMaxKeys
		if end > len(ids) {
			end = len(ids)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, catalogKey(storeID, id))
		}

		for len(keys) > 0 {
			out, err := ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: map[string]types.KeysAndAttributes{
					tableName: {Keys: keys},
				},
			})
			if err != nil {
				return nil, err
			}
			items = append(items, out.Responses[tableName]...)
			keys = out.UnprocessedKeys[tableName].Keys
		}
	}
	return items, nil
}

// queryByStore returns every item of one store, following pagination.
func queryByStore(
	ctx context.Context,
	ddb *dynamodb.Client,
	tableName, storeID string,
) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		out, err := ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(tableName),
			KeyConditionExpression: aws.String("#store_id = :store_id"),
			ExpressionAttributeNames: map[string]string{
				"#store_id": "store_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":store_id": &types.AttributeValueMemberS{Value: storeID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
