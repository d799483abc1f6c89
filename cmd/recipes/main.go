package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog"
	appConfig "calvillo.me/recetas/internal/config"
	auditData "calvillo.me/recetas/internal/dynamodb/audits"
	recipeData "calvillo.me/recetas/internal/dynamodb/customrecipes"
	subscriberData "calvillo.me/recetas/internal/dynamodb/subscriptions"
	"calvillo.me/recetas/internal/dynamodb/token"
	"calvillo.me/recetas/internal/mealdb"
	"calvillo.me/recetas/internal/recipes"
	"calvillo.me/recetas/internal/routes"
	auditRoutes "calvillo.me/recetas/internal/routes/audits"
	recipeRoutes "calvillo.me/recetas/internal/routes/customrecipes"
	"calvillo.me/recetas/internal/routes/external"
	"calvillo.me/recetas/internal/routes/subscriptions"
	"calvillo.me/recetas/internal/sns/services"
)

type App struct {
	Router routes.Router
}

func NewApp() App {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg, err := appConfig.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load application config")
	}
	awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load AWS config")
	}
	client := dynamodb.NewFromConfig(awsCfg)
	snsClient := sns.NewFromConfig(awsCfg)
	marshaler := token.NewGCM()
	var watcher *recipeData.StreamWatcher
	if cfg.StreamArn != "" {
		streamsClient := dynamodbstreams.NewFromConfig(awsCfg)
		watcher = recipeData.NewStreamWatcher(cfg.StreamArn, streamsClient, cfg.StreamPollInterval, logger)
	}
	store := recipeData.NewCustomRecipeStore(cfg.TableName, *client, watcher)
	router := routes.NewRouter(
		recipeRoutes.NewRoute(recipes.NewRecipesService(store, logger)),
		external.NewRoute(mealdb.NewMealClient(cfg.MealDBVersion, cfg.MealDBToken)),
		subscriptions.NewRoute(
			subscriberData.NewSubscriptionService(cfg.TableName, *client, marshaler),
			&services.NotificationSNSService{
				Sns:      *snsClient,
				TopicArn: cfg.TopicArn,
			},
		),
		auditRoutes.NewRoute(auditData.NewAuditService(cfg.TableName, *client, marshaler)),
	)
	return App{
		Router: *router,
	}
}

func (app *App) HandleRequest(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return app.Router.Invoke(request, ctx), nil
}

func main() {
	app := NewApp()
	lambda.Start(app.HandleRequest)
}
