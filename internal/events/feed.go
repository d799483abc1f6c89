package events

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"calvillo.me/recetas/internal/dynamodb/customrecipes"
	"calvillo.me/recetas/internal/notifications"
)

type FeedChange struct {
	OwnerId  string `json:"ownerId"`
	RecipeId string `json:"recipeId"`
	Action   string `json:"action"`
}

// NotifyFeedChangeHandler fans every custom-recipe change out to the
// notification topic so feed subscribers learn the namespace moved.
type NotifyFeedChangeHandler struct {
	Notifications notifications.NotificationService
}

func (nh *NotifyFeedChangeHandler) Filter(record events.DynamoDBEventRecord) bool {
	switch record.EventName {
	case "INSERT", "MODIFY", "REMOVE":
		return _isCustomRecipe(record)
	}
	return false
}

func (nh *NotifyFeedChangeHandler) Apply(record events.DynamoDBEventRecord) error {
	ownerId, _ := customrecipes.OwnerFromPath(record.Change.Keys["PK"].String())
	message, err := json.Marshal(FeedChange{
		OwnerId:  ownerId,
		RecipeId: record.Change.Keys["SK"].String(),
		Action:   record.EventName,
	})
	if err != nil {
		return err
	}
	return nh.Notifications.Publish("Recipe feed updated", string(message))
}

func DefaultFeedChangeHandler(service notifications.NotificationService) *NotifyFeedChangeHandler {
	return &NotifyFeedChangeHandler{
		Notifications: service,
	}
}
