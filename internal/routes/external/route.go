package external

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"calvillo.me/recetas/internal/exceptions"
	"calvillo.me/recetas/internal/provider"
	"calvillo.me/recetas/internal/routes"
	"calvillo.me/recetas/internal/routes/util"
)

type ExternalService struct {
	Service provider.RecipeProvider
}

func NewRoute(service provider.RecipeProvider) routes.Service {
	return &ExternalService{
		Service: service,
	}
}

func (es *ExternalService) GetRoutes() map[string]routes.Route {
	return map[string]routes.Route{
		"GET:/providers/mealdb":                 util.AuthorizedRoute(es.Search),
		"GET:/providers/mealdb/random":          util.AuthorizedRoute(es.Random),
		"GET:/providers/mealdb/filter":          util.AuthorizedRoute(es.Filter),
		"GET:/providers/mealdb/:mealId/recipes": util.AuthorizedRoute(es.Lookup),
	}
}

func (es *ExternalService) Lookup(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	query, err := es.Service.Lookup(util.RequestParam(ctx, "mealId"))
	return util.SerializeResponseOK(util.IdentityThunk, query, err)
}

func (es *ExternalService) Search(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	text, ok := event.QueryStringParameters["search"]
	if !ok {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("Need a search parameter set")
	}
	query, err := es.Service.Search(text)
	return util.SerializeResponseOK(util.IdentityThunk, query, err)
}

func (es *ExternalService) Random(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	query, err := es.Service.Random()
	return util.SerializeResponseOK(util.IdentityThunk, query, err)
}

func (es *ExternalService) Filter(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	var input provider.FilterInput
	if category, ok := event.QueryStringParameters["category"]; ok {
		input.Category = &category
	}
	if area, ok := event.QueryStringParameters["area"]; ok {
		input.Area = &area
	}
	if ingredient, ok := event.QueryStringParameters["ingredient"]; ok {
		input.MainIngredient = &ingredient
	}
	if input.Category == nil && input.Area == nil && input.MainIngredient == nil {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("Need a category, area, or ingredient parameter set")
	}
	query, err := es.Service.Filter(input)
	return util.SerializeResponseOK(util.IdentityThunk, query, err)
}
