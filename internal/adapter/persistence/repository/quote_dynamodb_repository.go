package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"comunikapp/internal/domain/entities"
	"comunikapp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName        = "quotes"
	defaultQuoteItemsTableName    = "quote_items"
	defaultQuoteCountersTableName = "quote_counters"

	quotesByStoreIndex = "store_id-index"
)

type quoteItem struct {
	ID              string  `dynamodbav:"id"`
	StoreID         string  `dynamodbav:"store_id"`
	Number          string  `dynamodbav:"numero"`
	ServiceName     string  `dynamodbav:"nome_servico"`
	Description     string  `dynamodbav:"descricao"`
	ClientID        string  `dynamodbav:"cliente_id"`
	ProductionHours float64 `dynamodbav:"horas_producao"`
	ProductQuantity int     `dynamodbav:"quantidade_produto"`

	MaterialCost        float64 `dynamodbav:"custo_material"`
	LaborCost           float64 `dynamodbav:"custo_mao_obra"`
	IndirectCost        float64 `dynamodbav:"custo_indireto"`
	TotalProductionCost float64 `dynamodbav:"custo_total_producao"`
	MarginPercent       float64 `dynamodbav:"margem_lucro"`
	MarginValue         float64 `dynamodbav:"valor_margem"`
	SubtotalWithMargin  float64 `dynamodbav:"subtotal_com_margem"`
	TaxPercent          float64 `dynamodbav:"impostos"`
	TaxValue            float64 `dynamodbav:"valor_impostos"`
	FinalPrice          float64 `dynamodbav:"preco_final"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type quoteLineItem struct {
	QuoteID       string  `dynamodbav:"quote_id"`
	Seq           int     `dynamodbav:"seq"`
	MaterialID    string  `dynamodbav:"insumo_id"`
	Name          string  `dynamodbav:"nome"`
	Quantity      float64 `dynamodbav:"quantidade"`
	UnitCost      float64 `dynamodbav:"custo_unitario"`
	LineTotal     float64 `dynamodbav:"custo_total"`
	UnitOfMeasure string  `dynamodbav:"unidade_medida"`
}

type quoteCounterItem struct {
	StoreID   string `dynamodbav:"store_id"`
	YearMonth string `dynamodbav:"year_month"`
	Seq       int    `dynamodbav:"seq"`
}

// QuoteDynamoRepository persists quotes, their line items and the per-store
// numbering counters in DynamoDB.
//
// Table requirements:
//   - quotes: PK id (string); GSI store_id-index with PK store_id (string)
//     and SK numero (string)
//   - quote_items: PK quote_id (string), SK seq (number)
//   - quote_counters: PK store_id (string), SK year_month (string)
//
// Quote + line items are always written in one transaction so a reader can
// never observe a quote whose items do not match its snapshot.

type QuoteDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	itemsTable    string
	countersTable string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		itemsTable:    getenvDefault("QUOTE_ITEMS_TABLE", defaultQuoteItemsTableName),
		countersTable: getenvDefault("QUOTE_COUNTERS_TABLE", defaultQuoteCountersTableName),
	}
}

func (r *QuoteDynamoRepository) CreateWithItems(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}
	itemWrites, err := r.itemPuts(q)
	if err != nil {
		return entities.Quote{}, err
	}
	writes = append(writes, itemWrites...)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}

	q := fromQuoteItem(it)
	q.Items, err = r.loadItems(ctx, q.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) ListByStore(ctx context.Context, storeID string) ([]entities.Quote, error) {
	var quotes []entities.Quote
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(quotesByStoreIndex),
			KeyConditionExpression: aws.String("#store_id = :store_id"),
			ExpressionAttributeNames: map[string]string{
				"#store_id": "store_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":store_id": &types.AttributeValueMemberS{Value: storeID},
			},
			// Numero mais recente primeiro.
			ScanIndexForward:  aws.Bool(false),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			q := fromQuoteItem(it)
			q.Items, err = r.loadItems(ctx, q.ID)
			if err != nil {
				return nil, err
			}
			quotes = append(quotes, q)
		}

		if len(out.LastEvaluatedKey) == 0 {
			return quotes, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// ReplaceWithItems rewrites the quote snapshot and its whole line-item set in
// one transaction. Items whose seq is reused are overwritten in place; stale
// trailing seqs are deleted.
func (r *QuoteDynamoRepository) ReplaceWithItems(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	existing, err := r.loadItems(ctx, q.ID)
	if err != nil {
		return entities.Quote{}, err
	}

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}
	itemWrites, err := r.itemPuts(q)
	if err != nil {
		return entities.Quote{}, err
	}
	writes = append(writes, itemWrites...)

	for _, it := range existing {
		if it.Seq <= len(q.Items) {
			continue
		}
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.itemsTable),
				Key:       quoteItemKey(q.ID, it.Seq),
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

// SaveMetadata patches the descriptive fields only; snapshot and line items
// stay untouched.
func (r *QuoteDynamoRepository) SaveMetadata(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: q.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #nome_servico = :nome_servico, #descricao = :descricao, #cliente_id = :cliente_id, #updated_at = :updated_at"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#nome_servico": "nome_servico",
			"#descricao":    "descricao",
			"#cliente_id":   "cliente_id",
			"#updated_at":   "updated_at",
		}, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nome_servico": &types.AttributeValueMemberS{Value: q.ServiceName},
			":descricao":    &types.AttributeValueMemberS{Value: q.Description},
			":cliente_id":   &types.AttributeValueMemberS{Value: q.ClientID},
			":updated_at":   &types.AttributeValueMemberS{Value: q.UpdatedAt.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, q entities.Quote) error {
	existing, err := r.loadItems(ctx, q.ID)
	if err != nil {
		return err
	}

	writes := []types.TransactWriteItem{{
		Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: q.ID},
			},
		},
	}}
	for _, it := range existing {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.itemsTable),
				Key:       quoteItemKey(q.ID, it.Seq),
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}

// NextSequence atomically increments the per-store, per-month counter and
// returns the new value. The upsert semantics of ADD make the first call of a
// month create the counter at 1.
func (r *QuoteDynamoRepository) NextSequence(ctx context.Context, storeID, yearMonth string) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"store_id":   &types.AttributeValueMemberS{Value: storeID},
			"year_month": &types.AttributeValueMemberS{Value: yearMonth},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	var counter quoteCounterItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// LastNumberForMonth returns the highest persisted quote number of the month,
// or "" when the store has no quotes for it yet.
func (r *QuoteDynamoRepository) LastNumberForMonth(ctx context.Context, storeID, yearMonth string) (string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesByStoreIndex),
		KeyConditionExpression: aws.String("#store_id = :store_id AND begins_with(#numero, :ym)"),
		ExpressionAttributeNames: map[string]string{
			"#store_id": "store_id",
			"#numero":   "numero",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":store_id": &types.AttributeValueMemberS{Value: storeID},
			":ym":       &types.AttributeValueMemberS{Value: yearMonth},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return "", err
	}
	if len(out.Items) == 0 {
		return "", nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return "", err
	}
	return it.Number, nil
}

func (r *QuoteDynamoRepository) loadItems(ctx context.Context, quoteID string) ([]entities.QuoteLineItem, error) {
	var items []entities.QuoteLineItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.itemsTable),
			KeyConditionExpression: aws.String("#quote_id = :quote_id"),
			ExpressionAttributeNames: map[string]string{
				"#quote_id": "quote_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":quote_id": &types.AttributeValueMemberS{Value: quoteID},
			},
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it quoteLineItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuoteLineItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *QuoteDynamoRepository) itemPuts(q entities.Quote) ([]types.TransactWriteItem, error) {
	writes := make([]types.TransactWriteItem, 0, len(q.Items))
	for _, it := range q.Items {
		av, err := attributevalue.MarshalMap(toQuoteLineItem(it))
		if err != nil {
			return nil, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTable),
				Item:      av,
			},
		})
	}
	return writes, nil
}

func quoteItemKey(quoteID string, seq int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		"seq":      &types.AttributeValueMemberN{Value: strconv.Itoa(seq)},
	}
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:                  q.ID,
		StoreID:             q.StoreID,
		Number:              q.Number,
		ServiceName:         q.ServiceName,
		Description:         q.Description,
		ClientID:            q.ClientID,
		ProductionHours:     q.ProductionHours,
		ProductQuantity:     q.ProductQuantity,
		MaterialCost:        q.MaterialCost,
		LaborCost:           q.LaborCost,
		IndirectCost:        q.IndirectCost,
		TotalProductionCost: q.TotalProductionCost,
		MarginPercent:       q.MarginPercent,
		MarginValue:         q.MarginValue,
		SubtotalWithMargin:  q.SubtotalWithMargin,
		TaxPercent:          q.TaxPercent,
		TaxValue:            q.TaxValue,
		FinalPrice:          q.FinalPrice,
		CreatedAt:           q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Quote{
		ID:                  it.ID,
		StoreID:             it.StoreID,
		Number:              it.Number,
		ServiceName:         it.ServiceName,
		Description:         it.Description,
		ClientID:            it.ClientID,
		ProductionHours:     it.ProductionHours,
		ProductQuantity:     it.ProductQuantity,
		MaterialCost:        it.MaterialCost,
		LaborCost:           it.LaborCost,
		IndirectCost:        it.IndirectCost,
		TotalProductionCost: it.TotalProductionCost,
		MarginPercent:       it.MarginPercent,
		MarginValue:         it.MarginValue,
		SubtotalWithMargin:  it.SubtotalWithMargin,
		TaxPercent:          it.TaxPercent,
		TaxValue:            it.TaxValue,
		FinalPrice:          it.FinalPrice,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}

func toQuoteLineItem(it entities.QuoteLineItem) quoteLineItem {
	return quoteLineItem{
		QuoteID:       it.QuoteID,
		Seq:           it.Seq,
		MaterialID:    it.MaterialID,
		Name:          it.Name,
		Quantity:      it.Quantity,
		UnitCost:      it.UnitCost,
		LineTotal:     it.LineTotal,
		UnitOfMeasure: it.UnitOfMeasure,
	}
}

func fromQuoteLineItem(it quoteLineItem) entities.QuoteLineItem {
	return entities.QuoteLineItem{
		QuoteID:       it.QuoteID,
		Seq:           it.Seq,
		MaterialID:    it.MaterialID,
		Name:          it.Name,
		Quantity:      it.Quantity,
		UnitCost:      it.UnitCost,
		LineTotal:     it.LineTotal,
		UnitOfMeasure: it.UnitOfMeasure,
	}
}
