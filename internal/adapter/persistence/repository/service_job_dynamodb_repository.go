package repository

import (
	"context"
	"errors"

	"workshop_flow/internal/domain/entities"
	"workshop_flow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceJobsTableName = "service_jobs"

type serviceJobItem struct {
	ID           string           `dynamodbav:"id"`
	CustomerID   string           `dynamodbav:"customer_id"`
	TechnicianID string           `dynamodbav:"technician_id,omitempty"`
	SupplierIDs  []string         `dynamodbav:"supplier_ids,omitempty"`
	Status       string           `dynamodbav:"status"`
	Broadcast    bool             `dynamodbav:"broadcast"`
	Quote        *quoteItem       `dynamodbav:"quote,omitempty"`
	Bill         *billItem        `dynamodbav:"bill,omitempty"`
	Version      int64            `dynamodbav:"version"`
	History      []transitionItem `dynamodbav:"history"`
	CreatedAt    string           `dynamodbav:"created_at"`
	UpdatedAt    string           `dynamodbav:"updated_at"`
}

// ServiceJobDynamoRepository persists ServiceJob snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole snapshot is written as one item, so state, version and history
// commit atomically; the version condition on the put is the per-entity
// serialization guard.

type ServiceJobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceJobRepository = (*ServiceJobDynamoRepository)(nil)

func NewServiceJobDynamoRepository(ddb *dynamodb.Client) *ServiceJobDynamoRepository {
	return &ServiceJobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_JOBS_TABLE", defaultServiceJobsTableName),
	}
}

func (r *ServiceJobDynamoRepository) Create(ctx context.Context, job entities.ServiceJob) (entities.ServiceJob, error) {
	av, err := attributevalue.MarshalMap(toServiceJobItem(job))
	if err != nil {
		return entities.ServiceJob{}, err
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
		return entities.ServiceJob{}, err
	}
	return job, nil
}

func (r *ServiceJobDynamoRepository) Load(ctx context.Context, id string) (entities.ServiceJob, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceJob{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceJob{}, nil
	}

	var it serviceJobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceJob{}, err
	}
	return fromServiceJobItem(it), nil
}

func (r *ServiceJobDynamoRepository) CommitIfVersion(ctx context.Context, id string, expectedVersion int64, job entities.ServiceJob) (entities.ServiceJob, error) {
	av, err := attributevalue.MarshalMap(toServiceJobItem(job))
	if err != nil {
		return entities.ServiceJob{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceJob{}, interfaces.ErrVersionConflict
		}
		return entities.ServiceJob{}, err
	}
	return job, nil
}

func toServiceJobItem(j entities.ServiceJob) serviceJobItem {
	return serviceJobItem{
		ID:           j.ID,
		CustomerID:   j.CustomerID,
		TechnicianID: j.TechnicianID,
		SupplierIDs:  j.SupplierIDs,
		Status:       string(j.Status),
		Broadcast:    j.Broadcast,
		Quote:        toQuoteItem(j.Quote),
		Bill:         toBillItem(j.Bill),
		Version:      j.Version,
		History:      toTransitionItems(j.History),
		CreatedAt:    timeToString(j.CreatedAt),
		UpdatedAt:    timeToString(j.UpdatedAt),
	}
}

func fromServiceJobItem(it serviceJobItem) entities.ServiceJob {
	return entities.ServiceJob{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		TechnicianID: it.TechnicianID,
		SupplierIDs:  it.SupplierIDs,
		Status:       entities.JobStatus(it.Status),
		Broadcast:    it.Broadcast,
		Quote:        fromQuoteItem(it.Quote),
		Bill:         fromBillItem(it.Bill),
		Version:      it.Version,
		History:      fromTransitionItems(it.History),
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}
}
