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

const defaultClientsTableName = "clients"

type clientItem struct {
	StoreID   string `dynamodbav:"store_id"`
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"nome"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"telefone"`
	Document  string `dynamodbav:"documento"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists the client registry in DynamoDB.
//
// Table requirements:
//   - PK: store_id (string)
//   - SK: id (string)

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
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
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, storeID, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       catalogKey(storeID, id),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) ListByStore(ctx context.Context, storeID string) ([]entities.Client, error) {
	items, err := queryByStore(ctx, r.ddb, r.tableName, storeID)
	if err != nil {
		return nil, err
	}

	clients := make([]entities.Client, 0, len(items))
	for _, raw := range items {
		var it clientItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		clients = append(clients, fromClientItem(it))
	}
	return clients, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
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
			return entities.Client{}, nil
		}
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, storeID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       catalogKey(storeID, id),
	})
	return err
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		StoreID:   c.StoreID,
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Document:  c.Document,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClientItem(it clientItem) entities.Client {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Client{
		ID:        it.ID,
		StoreID:   it.StoreID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Document:  it.Document,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
