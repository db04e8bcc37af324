package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mutawazi_proposals/internal/domain/entities"
	"mutawazi_proposals/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProposalsTableName = "proposals"

type storedProposalItem struct {
	QuotationCode string `dynamodbav:"quotation_code"`
	Metadata      string `dynamodbav:"metadata,omitempty"`
	Proposal      string `dynamodbav:"proposal,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// ProposalDynamoRepository persists proposal records in DynamoDB, for
// deployments where quotations must outlive the process.
//
// Table requirements:
//   - PK: quotation_code (string)
//
// Put intentionally carries no condition expression: a quotation-code
// collision overwrites the previous record, matching the store contract.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Put(ctx context.Context, record entities.StoredProposal) (entities.StoredProposal, error) {
	it, err := toStoredProposalItem(record)
	if err != nil {
		return entities.StoredProposal{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.StoredProposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.StoredProposal{}, err
	}
	return record, nil
}

func (r *ProposalDynamoRepository) Get(ctx context.Context, quotationCode string) (entities.StoredProposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quotation_code": &types.AttributeValueMemberS{Value: quotationCode},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StoredProposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.StoredProposal{}, nil
	}

	var it storedProposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StoredProposal{}, err
	}
	return fromStoredProposalItem(it)
}

func (r *ProposalDynamoRepository) Delete(ctx context.Context, quotationCode string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quotation_code": &types.AttributeValueMemberS{Value: quotationCode},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *ProposalDynamoRepository) ListCodes(ctx context.Context) ([]string, error) {
	codes := []string{}
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                aws.String(r.tableName),
			ProjectionExpression:     aws.String("#code"),
			ExpressionAttributeNames: map[string]string{"#code": "quotation_code"},
			ExclusiveStartKey:        startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it storedProposalItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			codes = append(codes, it.QuotationCode)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return codes, nil
}

func toStoredProposalItem(record entities.StoredProposal) (storedProposalItem, error) {
	it := storedProposalItem{
		QuotationCode: record.QuotationCode,
		CreatedAt:     record.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if record.Metadata != nil {
		b, err := json.Marshal(record.Metadata)
		if err != nil {
			return storedProposalItem{}, err
		}
		it.Metadata = string(b)
	}
	if record.Proposal != nil {
		b, err := json.Marshal(record.Proposal)
		if err != nil {
			return storedProposalItem{}, err
		}
		it.Proposal = string(b)
	}
	return it, nil
}

func fromStoredProposalItem(it storedProposalItem) (entities.StoredProposal, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	record := entities.StoredProposal{
		QuotationCode: it.QuotationCode,
		CreatedAt:     createdAt,
	}
	if it.Metadata != "" {
		var meta entities.ProjectMetadata
		if err := json.Unmarshal([]byte(it.Metadata), &meta); err != nil {
			return entities.StoredProposal{}, err
		}
		record.Metadata = &meta
	}
	if it.Proposal != "" {
		var p entities.Proposal
		if err := json.Unmarshal([]byte(it.Proposal), &p); err != nil {
			return entities.StoredProposal{}, err
		}
		record.Proposal = &p
	}
	return record, nil
}
