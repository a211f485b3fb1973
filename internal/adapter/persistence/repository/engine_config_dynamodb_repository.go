package repository

import (
	"context"
	"encoding/json"

	"arquitetura_xpto/internal/domain/engine"
	"arquitetura_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEngineConfigTableName = "engine_configs"

type engineConfigItem struct {
	OfficeID string `dynamodbav:"office_id"`
	Payload  string `dynamodbav:"payload"`
}

// EngineConfigDynamoRepository stores per-office pricing overrides.
//
// Table requirements:
//   - PK: office_id (string)
//
// The configuration travels as one JSON document. An office with no item
// simply has no override; the caller falls back to the stock configuration.

type EngineConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEngineConfigRepository = (*EngineConfigDynamoRepository)(nil)

func NewEngineConfigDynamoRepository(ddb *dynamodb.Client) *EngineConfigDynamoRepository {
	return &EngineConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENGINE_CONFIGS_TABLE", defaultEngineConfigTableName),
	}
}

func (r *EngineConfigDynamoRepository) GetByOfficeID(ctx context.Context, officeID string) (engine.Configuration, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"office_id": &types.AttributeValueMemberS{Value: officeID},
		},
	})
	if err != nil {
		return engine.Configuration{}, false, err
	}
	if len(out.Item) == 0 {
		return engine.Configuration{}, false, nil
	}

	var it engineConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return engine.Configuration{}, false, err
	}

	var cfg engine.Configuration
	if err := json.Unmarshal([]byte(it.Payload), &cfg); err != nil {
		return engine.Configuration{}, false, err
	}
	return cfg, true, nil
}

// Put stores or replaces an office's override. Used by seeding tooling.
func (r *EngineConfigDynamoRepository) Put(ctx context.Context, officeID string, cfg engine.Configuration) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(engineConfigItem{
		OfficeID: officeID,
		Payload:  string(payload),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
