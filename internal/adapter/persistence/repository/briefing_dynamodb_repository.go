package repository

import (
	"context"
	"errors"
	"time"

	"arquitetura_xpto/internal/domain/entities"
	"arquitetura_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBriefingsTableName = "briefings"

type briefingItem struct {
	ID                string            `dynamodbav:"id"`
	OfficeID          string            `dynamodbav:"office_id"`
	ProjectName       string            `dynamodbav:"project_name"`
	Description       string            `dynamodbav:"description"`
	Objectives        string            `dynamodbav:"objectives"`
	BudgetHint        string            `dynamodbav:"budget_hint"`
	StructuredAnswers map[string]string `dynamodbav:"structured_answers,omitempty"`
	Status            string            `dynamodbav:"status"`
	CreatedAt         string            `dynamodbav:"created_at"`
	UpdatedAt         string            `dynamodbav:"updated_at"`
}

// BriefingDynamoRepository persists Briefing entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type BriefingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBriefingRepository = (*BriefingDynamoRepository)(nil)

func NewBriefingDynamoRepository(ddb *dynamodb.Client) *BriefingDynamoRepository {
	return &BriefingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BRIEFINGS_TABLE", defaultBriefingsTableName),
	}
}

func (r *BriefingDynamoRepository) Create(ctx context.Context, b entities.Briefing) (entities.Briefing, error) {
	av, err := attributevalue.MarshalMap(toBriefingItem(b))
	if err != nil {
		return entities.Briefing{}, err
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
		return entities.Briefing{}, err
	}
	return b, nil
}

func (r *BriefingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Briefing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Briefing{}, err
	}
	if len(out.Item) == 0 {
		return entities.Briefing{}, nil
	}

	var it briefingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Briefing{}, err
	}
	return fromBriefingItem(it), nil
}

func (r *BriefingDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.BriefingStatus) (entities.Briefing, error) {
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
			return entities.Briefing{}, nil
		}
		return entities.Briefing{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Briefing{}, nil
	}

	var it briefingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Briefing{}, err
	}
	return fromBriefingItem(it), nil
}

func toBriefingItem(b entities.Briefing) briefingItem {
	return briefingItem{
		ID:                b.ID,
		OfficeID:          b.OfficeID,
		ProjectName:       b.ProjectName,
		Description:       b.Description,
		Objectives:        b.Objectives,
		BudgetHint:        b.BudgetHint,
		StructuredAnswers: b.StructuredAnswers,
		Status:            string(b.Status),
		CreatedAt:         b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBriefingItem(it briefingItem) entities.Briefing {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Briefing{
		ID:                it.ID,
		OfficeID:          it.OfficeID,
		ProjectName:       it.ProjectName,
		Description:       it.Description,
		Objectives:        it.Objectives,
		BudgetHint:        it.BudgetHint,
		StructuredAnswers: it.StructuredAnswers,
		Status:            entities.BriefingStatus(it.Status),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
