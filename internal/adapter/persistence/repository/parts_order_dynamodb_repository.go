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

const defaultPartsOrdersTableName = "parts_orders"

type partsOrderItem struct {
	ID         string           `dynamodbav:"id"`
	BuyerID    string           `dynamodbav:"buyer_id"`
	BuyerRole  string           `dynamodbav:"buyer_role"`
	SupplierID string           `dynamodbav:"supplier_id"`
	Status     string           `dynamodbav:"status"`
	Items      []lineItemItem   `dynamodbav:"items"`
	Quote      *quoteItem       `dynamodbav:"quote,omitempty"`
	Dispatch   *dispatchItem    `dynamodbav:"dispatch,omitempty"`
	Version    int64            `dynamodbav:"version"`
	History    []transitionItem `dynamodbav:"history"`
	CreatedAt  string           `dynamodbav:"created_at"`
	UpdatedAt  string           `dynamodbav:"updated_at"`
}

// PartsOrderDynamoRepository persists PartsOrder snapshots in DynamoDB.
// Same single-item layout and version-conditional write as the job table.
type PartsOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartsOrderRepository = (*PartsOrderDynamoRepository)(nil)

func NewPartsOrderDynamoRepository(ddb *dynamodb.Client) *PartsOrderDynamoRepository {
	return &PartsOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_ORDERS_TABLE", defaultPartsOrdersTableName),
	}
}

func (r *PartsOrderDynamoRepository) Create(ctx context.Context, order entities.PartsOrder) (entities.PartsOrder, error) {
	av, err := attributevalue.MarshalMap(toPartsOrderItem(order))
	if err != nil {
		return entities.PartsOrder{}, err
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
		return entities.PartsOrder{}, err
	}
	return order, nil
}

func (r *PartsOrderDynamoRepository) Load(ctx context.Context, id string) (entities.PartsOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PartsOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PartsOrder{}, nil
	}

	var it partsOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PartsOrder{}, err
	}
	return fromPartsOrderItem(it), nil
}

func (r *PartsOrderDynamoRepository) CommitIfVersion(ctx context.Context, id string, expectedVersion int64, order entities.PartsOrder) (entities.PartsOrder, error) {
	av, err := attributevalue.MarshalMap(toPartsOrderItem(order))
	if err != nil {
		return entities.PartsOrder{}, err
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
			return entities.PartsOrder{}, interfaces.ErrVersionConflict
		}
		return entities.PartsOrder{}, err
	}
	return order, nil
}

func toPartsOrderItem(o entities.PartsOrder) partsOrderItem {
	return partsOrderItem{
		ID:         o.ID,
		BuyerID:    o.BuyerID,
		BuyerRole:  string(o.BuyerRole),
		SupplierID: o.SupplierID,
		Status:     string(o.Status),
		Items:      toLineItems(o.Items),
		Quote:      toQuoteItem(o.Quote),
		Dispatch:   toDispatchItem(o.Dispatch),
		Version:    o.Version,
		History:    toTransitionItems(o.History),
		CreatedAt:  timeToString(o.CreatedAt),
		UpdatedAt:  timeToString(o.UpdatedAt),
	}
}

func fromPartsOrderItem(it partsOrderItem) entities.PartsOrder {
	return entities.PartsOrder{
		ID:         it.ID,
		BuyerID:    it.BuyerID,
		BuyerRole:  entities.Role(it.BuyerRole),
		SupplierID: it.SupplierID,
		Status:     entities.OrderStatus(it.Status),
		Items:      fromLineItems(it.Items),
		Quote:      fromQuoteItem(it.Quote),
		Dispatch:   fromDispatchItem(it.Dispatch),
		Version:    it.Version,
		History:    fromTransitionItems(it.History),
		CreatedAt:  stringToTime(it.CreatedAt),
		UpdatedAt:  stringToTime(it.UpdatedAt),
	}
}
