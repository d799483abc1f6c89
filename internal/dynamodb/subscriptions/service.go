package subscriptions

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"calvillo.me/recetas/internal/data"
	"calvillo.me/recetas/internal/dynamodb/services"
	"calvillo.me/recetas/internal/dynamodb/token"
)

func NewSubscriptionService(tableName string, client dynamodb.Client, marshaler token.TokenMarshaler) data.SubscriptionRepository {
	return &services.RepositoryDynamoDBService[data.SubscriptionDTO, data.SubscriptionInputDTO]{
		DynamoDB:       client,
		TableName:      tableName,
		TokenMarshaler: marshaler,
		Name:           "Subscription",
		Shim: func(pk, sk string) data.SubscriptionDTO {
			return data.SubscriptionDTO{PK: pk, SK: sk}
		},
		OnCreate: func(input data.SubscriptionInputDTO, now time.Time, pk, sk string) data.SubscriptionDTO {
			dto := data.SubscriptionDTO{
				PK:         pk,
				SK:         sk,
				CreateTime: now,
				UpdateTime: now,
			}
			if input.Endpoint != nil {
				dto.Endpoint = *input.Endpoint
			}
			if input.Protocol != nil {
				dto.Protocol = *input.Protocol
			}
			if input.SubscriberArn != nil {
				dto.SubscriberArn = *input.SubscriberArn
			}
			return dto
		},
		OnUpdate: func(input data.SubscriptionInputDTO, update expression.UpdateBuilder) expression.UpdateBuilder {
			if input.Endpoint != nil {
				update = update.Set(expression.Name("endpoint"), expression.Value(input.Endpoint))
			}
			if input.Protocol != nil {
				update = update.Set(expression.Name("protocol"), expression.Value(input.Protocol))
			}
			if input.SubscriberArn != nil {
				update = update.Set(expression.Name("subscriberArn"), expression.Value(input.SubscriberArn))
			}
			return update
		},
	}
}
