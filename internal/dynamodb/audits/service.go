package audits

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"calvillo.me/recetas/internal/data"
	"calvillo.me/recetas/internal/dynamodb/services"
	"calvillo.me/recetas/internal/dynamodb/token"
)

func NewAuditService(tableName string, client dynamodb.Client, marshaler token.TokenMarshaler) data.AuditRepository {
	return &services.RepositoryDynamoDBService[data.AuditDTO, data.AuditInputDTO]{
		DynamoDB:       client,
		TableName:      tableName,
		TokenMarshaler: marshaler,
		Name:           "Audit",
		Shim: func(pk, sk string) data.AuditDTO {
			return data.AuditDTO{PK: pk, SK: sk}
		},
		OnCreate: func(input data.AuditInputDTO, now time.Time, pk, sk string) data.AuditDTO {
			dto := data.AuditDTO{
				PK:         pk,
				SK:         sk,
				NewValues:  input.NewValues,
				OldValues:  input.OldValues,
				CreateTime: now,
				UpdateTime: now,
			}
			if input.ResourceId != nil {
				dto.ResourceId = *input.ResourceId
			}
			if input.ResourceType != nil {
				dto.ResourceType = *input.ResourceType
			}
			if input.Action != nil {
				dto.Action = *input.Action
			}
			return dto
		},
		OnUpdate: func(input data.AuditInputDTO, update expression.UpdateBuilder) expression.UpdateBuilder {
			if input.NewValues != nil {
				update = update.Set(expression.Name("newValues"), expression.Value(input.NewValues))
			}
			if input.OldValues != nil {
				update = update.Set(expression.Name("oldValues"), expression.Value(input.OldValues))
			}
			return update
		},
	}
}
