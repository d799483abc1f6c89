package events

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"calvillo.me/recetas/internal/data"
	"calvillo.me/recetas/internal/dynamodb/customrecipes"
)

func _isCustomRecipe(record events.DynamoDBEventRecord) bool {
	_, ok := customrecipes.OwnerFromPath(record.Change.Keys["PK"].String())
	return ok
}

func _convertImage(image map[string]events.DynamoDBAttributeValue) *map[string]interface{} {
	if len(image) == 0 {
		return nil
	}
	values := make(map[string]interface{}, len(image))
	for field, value := range image {
		if value.DataType() == events.DataTypeString {
			values[field] = value.String()
		}
	}
	return &values
}

// RecordAuditHandler appends one audit entry per custom-recipe change
// into the owner's audit namespace.
type RecordAuditHandler struct {
	Audits data.AuditRepository
}

func (ah *RecordAuditHandler) Filter(record events.DynamoDBEventRecord) bool {
	switch record.EventName {
	case "INSERT", "MODIFY", "REMOVE":
		return _isCustomRecipe(record)
	}
	return false
}

func (ah *RecordAuditHandler) Apply(record events.DynamoDBEventRecord) error {
	ownerId, _ := customrecipes.OwnerFromPath(record.Change.Keys["PK"].String())
	_, err := ah.Audits.Create(ownerId, data.AuditInputDTO{
		ResourceId:   aws.String(record.Change.Keys["SK"].String()),
		ResourceType: aws.String("CustomRecipe"),
		Action:       aws.String(record.EventName),
		NewValues:    _convertImage(record.Change.NewImage),
		OldValues:    _convertImage(record.Change.OldImage),
	})
	return err
}

func DefaultAuditHandler(db data.AuditRepository) *RecordAuditHandler {
	return &RecordAuditHandler{
		Audits: db,
	}
}
