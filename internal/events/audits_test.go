package events

import (
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"calvillo.me/recetas/internal/data"
	"calvillo.me/recetas/internal/test"
)

func NewAuditRepository() *test.MemoryRepository[data.AuditDTO, data.AuditInputDTO] {
	return test.NewMemoryRepository(
		"Audit",
		func(input data.AuditInputDTO, now time.Time, itemId string) data.AuditDTO {
			dto := data.AuditDTO{
				SK:         itemId,
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
		func(item *data.AuditDTO, input data.AuditInputDTO) {
			if input.NewValues != nil {
				item.NewValues = input.NewValues
			}
			if input.OldValues != nil {
				item.OldValues = input.OldValues
			}
		},
	)
}

func _recipeRecord(eventName, ownerId, recipeId string) events.DynamoDBEventRecord {
	keys := map[string]events.DynamoDBAttributeValue{
		"PK": events.NewStringAttribute("customRecipes/" + ownerId),
		"SK": events.NewStringAttribute(recipeId),
	}
	change := events.DynamoDBStreamRecord{Keys: keys}
	if eventName != "REMOVE" {
		change.NewImage = map[string]events.DynamoDBAttributeValue{
			"PK":   keys["PK"],
			"SK":   keys["SK"],
			"name": events.NewStringAttribute("A Tasty Treat"),
		}
	}
	if eventName != "INSERT" {
		change.OldImage = map[string]events.DynamoDBAttributeValue{
			"PK":   keys["PK"],
			"SK":   keys["SK"],
			"name": events.NewStringAttribute("A Tasty Treat"),
		}
	}
	return events.DynamoDBEventRecord{
		EventID:   uuid.NewString(),
		EventName: eventName,
		Change:    change,
	}
}

func TestAudits(t *testing.T) {
	t.Run("AuditHandler", func(t *testing.T) {
		t.Run("FiltersToCustomRecipes", func(t *testing.T) {
			handler := DefaultAuditHandler(NewAuditRepository())
			if !handler.Filter(_recipeRecord("INSERT", "smithj", uuid.NewString())) {
				t.Error("Expected a custom-recipe insert to pass the filter")
			}
			other := events.DynamoDBEventRecord{
				EventName: "INSERT",
				Change: events.DynamoDBStreamRecord{
					Keys: map[string]events.DynamoDBAttributeValue{
						"PK": events.NewStringAttribute("smithj:Subscription"),
						"SK": events.NewStringAttribute(uuid.NewString()),
					},
				},
			}
			if handler.Filter(other) {
				t.Error("Expected a non-recipe record to be filtered out")
			}
			if handler.Filter(_recipeRecord("UNKNOWN", "smithj", uuid.NewString())) {
				t.Error("Expected an unknown event name to be filtered out")
			}
		})

		t.Run("RecordsLifecycle", func(t *testing.T) {
			auditData := NewAuditRepository()
			handler := DefaultAuditHandler(auditData)
			recipeId := uuid.NewString()
			for _, eventName := range []string{"INSERT", "MODIFY", "REMOVE"} {
				record := _recipeRecord(eventName, "smithj", recipeId)
				if !handler.Filter(record) {
					t.Fatalf("Expected %s to pass the filter", eventName)
				}
				if err := handler.Apply(record); err != nil {
					t.Fatalf("Failed to apply %s: %s", eventName, err)
				}
			}
			results, err := auditData.List("smithj", data.QueryParams{})
			if err != nil {
				t.Fatalf("Failed to list audits: %s", err)
			}
			if len(results.Items) != 3 {
				t.Fatalf("Expected 3 audit entries, got %d", len(results.Items))
			}
			actions := make(map[string]data.AuditDTO)
			for _, item := range results.Items {
				actions[item.Action] = item
			}
			for _, eventName := range []string{"INSERT", "MODIFY", "REMOVE"} {
				item, ok := actions[eventName]
				if !ok {
					t.Fatalf("Missing audit for %s: %v", eventName, actions)
				}
				if item.ResourceId != recipeId || item.ResourceType != "CustomRecipe" {
					t.Errorf("Unexpected audit resource: %+v", item)
				}
			}
			if actions["INSERT"].OldValues != nil {
				t.Error("Insert audit should not carry old values")
			}
			if actions["REMOVE"].NewValues != nil {
				t.Error("Remove audit should not carry new values")
			}
			if modify := actions["MODIFY"]; modify.NewValues == nil || (*modify.NewValues)["name"] != "A Tasty Treat" {
				t.Errorf("Modify audit missing new values: %+v", modify)
			}
		})
	})
}
