package main

import (
	"context"
	"os"

	lambdaEvents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog"
	appConfig "calvillo.me/recetas/internal/config"
	"calvillo.me/recetas/internal/dynamodb/audits"
	"calvillo.me/recetas/internal/dynamodb/token"
	"calvillo.me/recetas/internal/events"
	"calvillo.me/recetas/internal/sns/services"
)

func HandleRequest(ctx context.Context, event lambdaEvents.DynamoDBEvent) error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg, err := appConfig.Load()
	if err != nil {
		return err
	}
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}

	client := dynamodb.NewFromConfig(awsCfg)
	snsClient := sns.NewFromConfig(awsCfg)
	marshaler := token.NewGCM()
	auditData := audits.NewAuditService(cfg.TableName, *client, marshaler)

	handlers := []events.EventFilter{
		events.DefaultAuditHandler(auditData),
		events.DefaultFeedChangeHandler(&services.NotificationSNSService{
			Sns:      *snsClient,
			TopicArn: cfg.TopicArn,
		}),
	}

	for _, record := range event.Records {
		for _, handler := range handlers {
			if handler.Filter(record) {
				if err := handler.Apply(record); err != nil {
					logger.Error().Err(err).
						Str("eventId", record.EventID).
						Str("eventName", record.EventName).
						Msg("Failed to handle stream record")
					break
				}
			}
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
