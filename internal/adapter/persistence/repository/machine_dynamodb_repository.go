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

const defaultMachinesTableName = "machines"

type machineItem struct {
	StoreID     string  `dynamodbav:"store_id"`
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"nome"`
	Type        string  `dynamodbav:"tipo"`
	CostPerHour float64 `dynamodbav:"custo_por_hora"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// MachineDynamoRepository persists the machine catalog in DynamoDB.
//
// Table requirements:
//   - PK: store_id (string)
//   - SK: id (string)

type MachineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMachineRepository = (*MachineDynamoRepository)(nil)

func NewMachineDynamoRepository(ddb *dynamodb.Client) *MachineDynamoRepository {
	return &MachineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MACHINES_TABLE", defaultMachinesTableName),
	}
}

func (r *MachineDynamoRepository) Create(ctx context.Context, m entities.Machine) (entities.Machine, error) {
	av, err := attributevalue.MarshalMap(toMachineItem(m))
	if err != nil {
		return entities.Machine{}, err
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
		return entities.Machine{}, err
	}
	return m, nil
}

func (r *MachineDynamoRepository) GetByID(ctx context.Context, storeID, id string) (entities.Machine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       catalogKey(storeID, id),
	})
	if err != nil {
		return entities.Machine{}, err
	}
	if len(out.Item) == 0 {
		return entities.Machine{}, nil
	}

	var it machineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Machine{}, err
	}
	return fromMachineItem(it), nil
}

func (r *MachineDynamoRepository) GetByIDs(ctx context.Context, storeID string, ids []string) ([]entities.Machine, error) {
	items, err := batchGetByCatalogKeys(ctx, r.ddb, r.tableName, storeID, ids)
	if err != nil {
		return nil, err
	}

	machines := make([]entities.Machine, 0, len(items))
	for _, raw := range items {
		var it machineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		machines = append(machines, fromMachineItem(it))
	}
	return machines, nil
}

func (r *MachineDynamoRepository) ListByStore(ctx context.Context, storeID string) ([]entities.Machine, error) {
	items, err := queryByStore(ctx, r.ddb, r.tableName, storeID)
	if err != nil {
		return nil, err
	}

	machines := make([]entities.Machine, 0, len(items))
	for _, raw := range items {
		var it machineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		machines = append(machines, fromMachineItem(it))
	}
	return machines, nil
}

func (r *MachineDynamoRepository) Update(ctx context.Context, m entities.Machine) (entities.Machine, error) {
	av, err := attributevalue.MarshalMap(toMachineItem(m))
	if err != nil {
		return entities.Machine{}, err
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
			return entities.Machine{}, nil
		}
		return entities.Machine{}, err
	}
	return m, nil
}

func (r *MachineDynamoRepository) Delete(ctx context.Context, storeID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       catalogKey(storeID, id),
	})
	return err
}

func toMachineItem(m entities.Machine) machineItem {
	return machineItem{
		StoreID:     m.StoreID,
		ID:          m.ID,
		Name:        m.Name,
		Type:        m.Type,
		CostPerHour: m.CostPerHour,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMachineItem(it machineItem) entities.Machine {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Machine{
		ID:          it.ID,
		StoreID:     it.StoreID,
		Name:        it.Name,
		Type:        it.Type,
		CostPerHour: it.CostPerHour,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
