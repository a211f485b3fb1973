package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"arquitetura_xpto/internal/domain/entities"
	"arquitetura_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName = "budgets"
	briefingIndexName       = "briefing_id-index"
	codeIndexName           = "code-index"
)

type budgetItem struct {
	ID         string `dynamodbav:"id"`
	Code       string `dynamodbav:"code"`
	BriefingID string `dynamodbav:"briefing_id"`
	OfficeID   string `dynamodbav:"office_id"`
	Status     string `dynamodbav:"status"`
	TotalValue string `dynamodbav:"total_value"`
	Payload    string `dynamodbav:"payload"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI briefing_id-index: PK briefing_id (version history per briefing)
//   - GSI code-index: PK code (human-readable lookup)
//
// The nested breakdowns travel in a single JSON payload attribute; the
// top-level attributes exist for keys, indexes and the status workflow.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it, err := toBudgetItem(b)
	if err != nil {
		return entities.Budget{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func (r *BudgetDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Budget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(codeIndexName),
		KeyConditionExpression: aws.String("#code = :code"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Items) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func (r *BudgetDynamoRepository) ListByBriefingID(ctx context.Context, briefingID string) ([]entities.Budget, error) {
	var budgets []entities.Budget
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(briefingIndexName),
			KeyConditionExpression: aws.String("#briefing_id = :briefing_id"),
			ExpressionAttributeNames: map[string]string{
				"#briefing_id": "briefing_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":briefing_id": &types.AttributeValueMemberS{Value: briefingID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it budgetItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			b, err := fromBudgetItem(it)
			if err != nil {
				return nil, err
			}
			budgets = append(budgets, b)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return budgets, nil
}

func (r *BudgetDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func toBudgetItem(b entities.Budget) (budgetItem, error) {
	payload, err := json.Marshal(b)
	if err != nil {
		return budgetItem{}, err
	}
	return budgetItem{
		ID:         b.ID,
		Code:       b.Code,
		BriefingID: b.BriefingID,
		OfficeID:   b.OfficeID,
		Status:     string(b.Status),
		TotalValue: floatToString(b.TotalValue),
		Payload:    string(payload),
		CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

// fromBudgetItem restores the aggregate from the payload document. The
// top-level status/updated_at win over the payload copy, so a status update
// never has to rewrite the whole document.
func fromBudgetItem(it budgetItem) (entities.Budget, error) {
	var b entities.Budget
	if err := json.Unmarshal([]byte(it.Payload), &b); err != nil {
		return entities.Budget{}, err
	}
	b.Status = entities.BudgetStatus(it.Status)
	if updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt); err == nil {
		b.UpdatedAt = updatedAt
	}
	return b, nil
}
