package repository

import (
	"context"
	"time"

	"comunikapp/internal/domain/entities"
	"comunikapp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSettingsTableName = "store_settings"

type settingsItem struct {
	StoreID                string   `dynamodbav:"store_id"`
	LaborCostPerHour       *float64 `dynamodbav:"custo_mao_obra_hora,omitempty"`
	MachineCostPerHour     float64  `dynamodbav:"custo_maquina_hora"`
	IndirectMonthlyCosts   *float64 `dynamodbav:"custos_indiretos_mensais,omitempty"`
	DefaultMarginPercent   float64  `dynamodbav:"margem_lucro_padrao"`
	DefaultTaxPercent      float64  `dynamodbav:"impostos_padrao"`
	MonthlyProductiveHours int      `dynamodbav:"horas_produtivas_mes"`
	UpdatedAt              string   `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository persists per-store cost settings in DynamoDB.
//
// Table requirements:
//   - PK: store_id (string)
//
// One record per store; labor and indirect costs stay absent until the store
// configures them, which is what gates quoting.

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STORE_SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) GetByStoreID(ctx context.Context, storeID string) (entities.StoreSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"store_id": &types.AttributeValueMemberS{Value: storeID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StoreSettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.StoreSettings{}, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StoreSettings{}, err
	}
	return fromSettingsItem(it), nil
}

func (r *SettingsDynamoRepository) Put(ctx context.Context, s entities.StoreSettings) (entities.StoreSettings, error) {
	av, err := attributevalue.MarshalMap(toSettingsItem(s))
	if err != nil {
		return entities.StoreSettings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.StoreSettings{}, err
	}
	return s, nil
}

func toSettingsItem(s entities.StoreSettings) settingsItem {
	return settingsItem{
		StoreID:                s.StoreID,
		LaborCostPerHour:       s.LaborCostPerHour,
		MachineCostPerHour:     s.MachineCostPerHour,
		IndirectMonthlyCosts:   s.IndirectMonthlyCosts,
		DefaultMarginPercent:   s.DefaultMarginPercent,
		DefaultTaxPercent:      s.DefaultTaxPercent,
		MonthlyProductiveHours: s.MonthlyProductiveHours,
		UpdatedAt:              s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSettingsItem(it settingsItem) entities.StoreSettings {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.StoreSettings{
		StoreID:                it.StoreID,
		LaborCostPerHour:       it.LaborCostPerHour,
		MachineCostPerHour:     it.MachineCostPerHour,
		IndirectMonthlyCosts:   it.IndirectMonthlyCosts,
		DefaultMarginPercent:   it.DefaultMarginPercent,
		DefaultTaxPercent:      it.DefaultTaxPercent,
		MonthlyProductiveHours: it.MonthlyProductiveHours,
		UpdatedAt:              updatedAt,
	}
}
