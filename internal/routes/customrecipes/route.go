package customrecipes

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"calvillo.me/recetas/internal/data"
	"calvillo.me/recetas/internal/exceptions"
	"calvillo.me/recetas/internal/recipes"
	"calvillo.me/recetas/internal/routes"
	"calvillo.me/recetas/internal/routes/util"
)

type CustomRecipeService struct {
	service *recipes.RecipesService
}

func NewRoute(service *recipes.RecipesService) routes.Service {
	return &CustomRecipeService{
		service: service,
	}
}

func (cs *CustomRecipeService) GetRoutes() map[string]routes.Route {
	return map[string]routes.Route{
		"POST:/recipes":             util.AuthorizedRoute(cs.CreateRecipe),
		"GET:/recipes":              util.AuthorizedRoute(cs.ListRecipes),
		"GET:/recipes/feed":         util.AuthorizedRoute(cs.ListFeed),
		"PUT:/recipes/:recipeId":    util.AuthorizedRoute(cs.UpdateRecipe),
		"DELETE:/recipes/:recipeId": util.AuthorizedRoute(cs.DeleteRecipe),
	}
}

func (cs *CustomRecipeService) CreateRecipe(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	input := RecipeInput{}
	if err := json.Unmarshal([]byte(event.Body), &input); err != nil {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput(err.Error())
	}
	result := cs.service.CreateRecipe(util.Username(ctx), input.ToData())
	return util.SerializeResponseOK(util.IdentityThunk[recipes.WriteResult], result, nil)
}

func (cs *CustomRecipeService) ListRecipes(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	records := cs.service.GetUserRecipes(util.Username(ctx))
	return util.SerializeResponseOK(util.IdentityThunk[[]data.CustomRecipeDTO], records, nil)
}

func (cs *CustomRecipeService) ListFeed(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	records := cs.service.GetAllCustomRecipes()
	return util.SerializeResponseOK(util.IdentityThunk[[]data.CustomRecipeDTO], records, nil)
}

func (cs *CustomRecipeService) UpdateRecipe(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	input := RecipeInput{}
	if err := json.Unmarshal([]byte(event.Body), &input); err != nil {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput(err.Error())
	}
	result := cs.service.UpdateRecipe(util.Username(ctx), util.RequestParam(ctx, "recipeId"), input.ToData())
	return util.SerializeResponseOK(util.IdentityThunk[recipes.WriteResult], result, nil)
}

func (cs *CustomRecipeService) DeleteRecipe(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	result := cs.service.DeleteRecipe(util.Username(ctx), util.RequestParam(ctx, "recipeId"))
	return util.SerializeResponseOK(util.IdentityThunk[recipes.WriteResult], result, nil)
}
