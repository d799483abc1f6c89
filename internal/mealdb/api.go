package mealdb

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"calvillo.me/recetas/internal/data"
	"calvillo.me/recetas/internal/provider"
	"calvillo.me/recetas/internal/routes/util"
)

type MealAPI struct {
	Version string
	Token   string
	Client  *http.Client
}

func NewMealClient(version string, token string) provider.RecipeProvider {
	return &MealAPI{
		Version: version,
		Token:   token,
		Client:  &http.Client{},
	}
}

func _apiRequest(mc *MealAPI, resource string, params map[string]string) ([]byte, error) {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	formatParams := ""
	if len(values) > 0 {
		formatParams = "?" + values.Encode()
	}
	req, err := http.NewRequest("GET", fmt.Sprintf("https://themealdb.com/api/json/%s/%s/%s.php%s", mc.Version, mc.Token, resource, formatParams), nil)
	if err != nil {
		return nil, err
	}
	resp, err := mc.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func _queryRequest(mc *MealAPI, resource string, params map[string]string) (data.QueryResults[provider.Recipe], error) {
	body, err := _apiRequest(mc, resource, params)
	if err != nil {
		return data.QueryResults[provider.Recipe]{}, err
	}
	var query QueryResponse
	if err := json.Unmarshal(body, &query); err != nil {
		return data.QueryResults[provider.Recipe]{}, err
	}
	return util.ConvertQueryResults(data.QueryResults[Meal]{Items: query.Meals}, ToRecipe), nil
}

func (mc *MealAPI) Random() (data.QueryResults[provider.Recipe], error) {
	return _queryRequest(mc, "random", map[string]string{})
}

func (mc *MealAPI) Lookup(id string) (data.QueryResults[provider.Recipe], error) {
	return _queryRequest(mc, "lookup", map[string]string{
		"i": id,
	})
}

func (mc *MealAPI) Search(text string) (data.QueryResults[provider.Recipe], error) {
	return _queryRequest(mc, "search", map[string]string{
		"s": text,
	})
}

func (mc *MealAPI) Filter(input provider.FilterInput) (data.QueryResults[provider.Recipe], error) {
	params := make(map[string]string, 1)
	if input.Category != nil {
		params["c"] = *input.Category
	}
	if input.Area != nil {
		params["a"] = *input.Area
	}
	if input.MainIngredient != nil {
		params["i"] = *input.MainIngredient
	}
	body, err := _apiRequest(mc, "filter", params)
	if err != nil {
		return data.QueryResults[provider.Recipe]{}, err
	}
	var filter FilterResponse
	if err := json.Unmarshal(body, &filter); err != nil {
		return data.QueryResults[provider.Recipe]{}, err
	}
	return util.ConvertQueryResults(data.QueryResults[FilteredMeal]{Items: filter.Meals}, ToFilteredRecipe), nil
}
