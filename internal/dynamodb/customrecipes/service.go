package customrecipes

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/oklog/ulid/v2"
	"calvillo.me/recetas/internal/data"
)

// RootPath is the collection every owner namespace hangs off of. The
// persisted layout is customRecipes/{ownerId} as the partition key and the
// generated recipe key as the sort key.
const RootPath = "customRecipes"

type CustomRecipeDynamoDBStore struct {
	DynamoDB  dynamodb.Client
	TableName string
	Watcher   *StreamWatcher
}

func NewCustomRecipeStore(tableName string, client dynamodb.Client, watcher *StreamWatcher) data.CustomRecipeStore {
	return &CustomRecipeDynamoDBStore{
		DynamoDB:  client,
		TableName: tableName,
		Watcher:   watcher,
	}
}

func OwnerPath(ownerId string) string {
	return fmt.Sprintf("%s/%s", RootPath, ownerId)
}

func _getKey(ownerId string, recipeId string) (map[string]types.AttributeValue, error) {
	pk, err := attributevalue.Marshal(OwnerPath(ownerId))
	if err != nil {
		return nil, err
	}
	sk, err := attributevalue.Marshal(recipeId)
	if err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{"PK": pk, "SK": sk}, nil
}

// ULIDs sort lexically by creation time, so the namespace enumeration
// order (SK ascending) is insertion order.
func (cs *CustomRecipeDynamoDBStore) GenerateKey(ownerId string) (string, error) {
	return ulid.Make().String(), nil
}

func (cs *CustomRecipeDynamoDBStore) Write(ownerId string, recipeId string, record data.CustomRecipeDTO) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return err
	}
	key, err := _getKey(ownerId, recipeId)
	if err != nil {
		return err
	}
	item["PK"] = key["PK"]
	item["SK"] = key["SK"]
	_, err = cs.DynamoDB.PutItem(context.TODO(), &dynamodb.PutItemInput{
		Item:      item,
		TableName: aws.String(cs.TableName),
	})
	return err
}

func _unmarshalRecord(item map[string]types.AttributeValue) (data.CustomRecipeDTO, error) {
	var record data.CustomRecipeDTO
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return record, err
	}
	if sk, ok := item["SK"].(*types.AttributeValueMemberS); ok {
		record.Id = sk.Value
	}
	return record, nil
}

func (cs *CustomRecipeDynamoDBStore) ReadOwner(ownerId string) ([]data.CustomRecipeDTO, error) {
	keyEx := expression.Key("PK").Equal(expression.Value(OwnerPath(ownerId)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyEx).Build()
	if err != nil {
		return nil, err
	}
	records := make([]data.CustomRecipeDTO, 0)
	var startKey map[string]types.AttributeValue
	for {
		output, err := cs.DynamoDB.Query(context.TODO(), &dynamodb.QueryInput{
			TableName:                 aws.String(cs.TableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range output.Items {
			record, err := _unmarshalRecord(item)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
		if output.LastEvaluatedKey == nil {
			return records, nil
		}
		startKey = output.LastEvaluatedKey
	}
}

func (cs *CustomRecipeDynamoDBStore) ReadAll() ([]data.CustomRecipeDTO, error) {
	filter := expression.BeginsWith(expression.Name("PK"), RootPath+"/")
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, err
	}
	type keyedRecord struct {
		pk     string
		record data.CustomRecipeDTO
	}
	var found []keyedRecord
	var startKey map[string]types.AttributeValue
	for {
		output, err := cs.DynamoDB.Scan(context.TODO(), &dynamodb.ScanInput{
			TableName:                 aws.String(cs.TableName),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range output.Items {
			record, err := _unmarshalRecord(item)
			if err != nil {
				return nil, err
			}
			pk := ""
			if pv, ok := item["PK"].(*types.AttributeValueMemberS); ok {
				pk = pv.Value
			}
			found = append(found, keyedRecord{pk: pk, record: record})
		}
		if output.LastEvaluatedKey == nil {
			break
		}
		startKey = output.LastEvaluatedKey
	}
	// Scan order interleaves partitions; group by owner before flattening.
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].pk != found[j].pk {
			return found[i].pk < found[j].pk
		}
		return found[i].record.Id < found[j].record.Id
	})
	records := make([]data.CustomRecipeDTO, len(found))
	for i, kr := range found {
		records[i] = kr.record
	}
	return records, nil
}

func (cs *CustomRecipeDynamoDBStore) Delete(ownerId string, recipeId string) error {
	key, err := _getKey(ownerId, recipeId)
	if err != nil {
		return err
	}
	_, err = cs.DynamoDB.DeleteItem(context.TODO(), &dynamodb.DeleteItemInput{
		Key:       key,
		TableName: aws.String(cs.TableName),
	})
	return err
}

func (cs *CustomRecipeDynamoDBStore) Subscribe(ownerId string, fn func([]data.CustomRecipeDTO)) (data.Unsubscribe, error) {
	if cs.Watcher == nil {
		return nil, errors.New("change subscriptions require a stream watcher")
	}
	deliver := func() {
		records, err := cs.ReadOwner(ownerId)
		if err != nil {
			// The next change triggers another read; a missed
			// intermediate snapshot is allowed by the contract.
			return
		}
		fn(records)
	}
	deliver()
	return cs.Watcher.Watch(OwnerPath(ownerId), deliver), nil
}

// OwnerFromPath extracts the owner id from a partition key, or returns
// false for keys outside the custom-recipes root.
func OwnerFromPath(pk string) (string, bool) {
	owner, found := strings.CutPrefix(pk, RootPath+"/")
	if !found || owner == "" {
		return "", false
	}
	return owner, true
}
