package subscriptions

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"calvillo.me/recetas/internal/data"
	"calvillo.me/recetas/internal/dynamodb/services"
	"calvillo.me/recetas/internal/dynamodb/token"
)

func _updateNames(t *testing.T, update expression.UpdateBuilder) map[string]bool {
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		t.Fatalf("Failed to build the update expression: %s", err)
	}
	names := make(map[string]bool, len(expr.Names()))
	for _, name := range expr.Names() {
		names[name] = true
	}
	return names
}

func TestSubscriptionOnUpdate(t *testing.T) {
	repo := NewSubscriptionService("Table", dynamodb.Client{}, token.NewGCM())
	service, ok := repo.(*services.RepositoryDynamoDBService[data.SubscriptionDTO, data.SubscriptionInputDTO])
	if !ok {
		t.Fatalf("Unexpected repository implementation: %T", repo)
	}
	endpoint := "nobody@email.com"
	protocol := "email"
	update := expression.Set(expression.Name("updateTime"), expression.Value(time.Now()))
	update = service.OnUpdate(data.SubscriptionInputDTO{
		Endpoint: &endpoint,
		Protocol: &protocol,
	}, update)
	names := _updateNames(t, update)
	if !names["endpoint"] || !names["protocol"] {
		t.Fatalf("Update expression is missing supplied fields: %v", names)
	}
	if names["subscriberArn"] {
		t.Fatalf("Update expression carries an omitted field: %v", names)
	}
}
