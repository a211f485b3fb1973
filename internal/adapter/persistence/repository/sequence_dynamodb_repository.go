package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"arquitetura_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequencesTableName = "budget_sequences"

// SequenceDynamoRepository issues monotonically increasing budget sequences,
// one counter item per month. The atomic ADD guarantees uniqueness even with
// concurrent calculations.
//
// Table requirements:
//   - PK: id (string), e.g. "orc-2609"

type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceProvider = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCES_TABLE", defaultSequencesTableName),
	}
}

func (r *SequenceDynamoRepository) Next(ctx context.Context, ref time.Time) (string, error) {
	counterID := "orc-" + ref.UTC().Format("0601")

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: counterID},
		},
		UpdateExpression: aws.String("ADD #counter :one"),
		ExpressionAttributeNames: map[string]string{
			"#counter": "counter",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return "", err
	}

	attr, ok := out.Attributes["counter"]
	if !ok {
		return "", fmt.Errorf("sequence counter %s missing from update result", counterID)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return "", fmt.Errorf("sequence counter %s has unexpected type %T", counterID, attr)
	}

	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%03d", v), nil
}
