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

const defaultRolesTableName = "roles"

type roleItem struct {
	StoreID           string  `dynamodbav:"store_id"`
	ID                string  `dynamodbav:"id"`
	Name              string  `dynamodbav:"nome"`
	CostPerHour       float64 `dynamodbav:"custo_por_hora"`
	LinkedMachineName string  `dynamodbav:"maquina_vinculada"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// RoleDynamoRepository persists the labor function catalog in DynamoDB.
//
// Table requirements:
//   - PK: store_id (string)
//   - SK: id (string)

type RoleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRoleRepository = (*RoleDynamoRepository)(nil)

func NewRoleDynamoRepository(ddb *dynamodb.Client) *RoleDynamoRepository {
	return &RoleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ROLES_TABLE", defaultRolesTableName),
	}
}

func (r *RoleDynamoRepository) Create(ctx context.Context, role entities.Role) (entities.Role, error) {
	av, err := attributevalue.MarshalMap(toRoleItem(role))
	if err != nil {
		return entities.Role{}, err
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
		return entities.Role{}, err
	}
	return role, nil
}

func (r *RoleDynamoRepository) GetByID(ctx context.Context, storeID, id string) (entities.Role, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       catalogKey(storeID, id),
	})
	if err != nil {
		return entities.Role{}, err
	}
	if len(out.Item) == 0 {
		return entities.Role{}, nil
	}

	var it roleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Role{}, err
	}
	return fromRoleItem(it), nil
}

func (r *RoleDynamoRepository) GetByIDs(ctx context.Context, storeID string, ids []string) ([]entities.Role, error) {
	items, err := batchGetByCatalogKeys(ctx, r.ddb, r.tableName, storeID, ids)
	if err != nil {
		return nil, err
	}

	roles := make([]entities.Role, 0, len(items))
	for _, raw := range items {
		var it roleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		roles = append(roles, fromRoleItem(it))
	}
	return roles, nil
}

func (r *RoleDynamoRepository) ListByStore(ctx context.Context, storeID string) ([]entities.Role, error) {
	items, err := queryByStore(ctx, r.ddb, r.tableName, storeID)
	if err != nil {
		return nil, err
	}

	roles := make([]entities.Role, 0, len(items))
	for _, raw := range items {
		var it roleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		roles = append(roles, fromRoleItem(it))
	}
	return roles, nil
}

func (r *RoleDynamoRepository) Update(ctx context.Context, role entities.Role) (entities.Role, error) {
	av, err := attributevalue.MarshalMap(toRoleItem(role))
	if err != nil {
		return entities.Role{}, err
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
			return entities.Role{}, nil
		}
		return entities.Role{}, err
	}
	return role, nil
}

func (r *RoleDynamoRepository) Delete(ctx context.Context, storeID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       catalogKey(storeID, id),
	})
	return err
}

func toRoleItem(role entities.Role) roleItem {
	return roleItem{
		StoreID:           role.StoreID,
		ID:                role.ID,
		Name:              role.Name,
		CostPerHour:       role.CostPerHour,
		LinkedMachineName: role.LinkedMachineName,
		CreatedAt:         role.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         role.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRoleItem(it roleItem) entities.Role {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Role{
		ID:                it.ID,
		StoreID:           it.StoreID,
		Name:              it.Name,
		CostPerHour:       it.CostPerHour,
		LinkedMachineName: it.LinkedMachineName,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
