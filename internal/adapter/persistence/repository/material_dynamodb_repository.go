package repository

import (
	"context"
	"errors"
	"time"

	"comunikapp/internal/domain/entities"
	"comunikapp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMaterialsTableName = "materials"

type materialItem struct {
	StoreID       string  `dynamodbav:"store_id"`
	ID            string  `dynamodbav:"id"`
	Name          string  `dynamodbav:"nome"`
	UnitCost      float64 `dynamodbav:"custo_unitario"`
	UnitOfMeasure string  `dynamodbav:"unidade_medida"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// MaterialDynamoRepository persists the material (insumo) catalog in DynamoDB.
//
// Table requirements:
//   - PK: store_id (string)
//   - SK: id (string)
//
// The store id is part of the key on purpose: a lookup can never cross
// tenants, even with a guessed material id.

type MaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIALS_TABLE", defaultMaterialsTableName),
	}
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(m))
	if err != nil {
		return entities.Material{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, storeID, id string) (entities.Material, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       catalogKey(storeID, id),
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Item) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) GetByIDs(ctx context.Context, storeID string, ids []string) ([]entities.Material, error) {
	items, err := batchGetByCatalogKeys(ctx, r.ddb, r.tableName, storeID, ids)
	if err != nil {
		return nil, err
	}

	materials := make([]entities.Material, 0, len(items))
	for _, raw := range items {
		var it materialItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		materials = append(materials, fromMaterialItem(it))
	}
	return materials, nil
}

func (r *MaterialDynamoRepository) ListByStore(ctx context.Context, storeID string) ([]entities.Material, error) {
	items, err := queryByStore(ctx, r.ddb, r.tableName, storeID)
	if err != nil {
		return nil, err
	}

	materials := make([]entities.Material, 0, len(items))
	for _, raw := range items {
		var it materialItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		materials = append(materials, fromMaterialItem(it))
	}
	return materials, nil
}

func (r *MaterialDynamoRepository) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(m))
	if err != nil {
		return entities.Material{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Material{}, nil
		}
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) Delete(ctx context.Context, storeID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       catalogKey(storeID, id),
	})
	return err
}

func toMaterialItem(m entities.Material) materialItem {
	return materialItem{
		StoreID:       m.StoreID,
		ID:            m.ID,
		Name:          m.Name,
		UnitCost:      m.UnitCost,
		UnitOfMeasure: m.UnitOfMeasure,
		CreatedAt:     m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMaterialItem(it materialItem) entities.Material {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Material{
		ID:            it.ID,
		StoreID:       it.StoreID,
		Name:          it.Name,
		UnitCost:      it.UnitCost,
		UnitOfMeasure: it.UnitOfMeasure,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
