package mealdb

import (
	"encoding/json"
	"fmt"
	"strings"

	"calvillo.me/recetas/internal/provider"
)

// Meal carries the upstream's flattened shape: up to 20 numbered
// ingredient/measure string pairs alongside the recipe fields.
type Meal struct {
	Id           string `json:"idMeal"`
	Name         string `json:"strMeal"`
	Category     string `json:"strCategory"`
	Area         string `json:"strArea"`
	Instructions string `json:"strInstructions"`
	Thumbnail    string `json:"strMealThumb"`
	Ingredient1  string `json:"strIngredient1"`
	Ingredient2  string `json:"strIngredient2"`
	Ingredient3  string `json:"strIngredient3"`
	Ingredient4  string `json:"strIngredient4"`
	Ingredient5  string `json:"strIngredient5"`
	Ingredient6  string `json:"strIngredient6"`
	Ingredient7  string `json:"strIngredient7"`
	Ingredient8  string `json:"strIngredient8"`
	Ingredient9  string `json:"strIngredient9"`
	Ingredient10 string `json:"strIngredient10"`
	Ingredient11 string `json:"strIngredient11"`
	Ingredient12 string `json:"strIngredient12"`
	Ingredient13 string `json:"strIngredient13"`
	Ingredient14 string `json:"strIngredient14"`
	Ingredient15 string `json:"strIngredient15"`
	Ingredient16 string `json:"strIngredient16"`
	Ingredient17 string `json:"strIngredient17"`
	Ingredient18 string `json:"strIngredient18"`
	Ingredient19 string `json:"strIngredient19"`
	Ingredient20 string `json:"strIngredient20"`
	Measure1     string `json:"strMeasure1"`
	Measure2     string `json:"strMeasure2"`
	Measure3     string `json:"strMeasure3"`
	Measure4     string `json:"strMeasure4"`
	Measure5     string `json:"strMeasure5"`
	Measure6     string `json:"strMeasure6"`
	Measure7     string `json:"strMeasure7"`
	Measure8     string `json:"strMeasure8"`
	Measure9     string `json:"strMeasure9"`
	Measure10    string `json:"strMeasure10"`
	Measure11    string `json:"strMeasure11"`
	Measure12    string `json:"strMeasure12"`
	Measure13    string `json:"strMeasure13"`
	Measure14    string `json:"strMeasure14"`
	Measure15    string `json:"strMeasure15"`
	Measure16    string `json:"strMeasure16"`
	Measure17    string `json:"strMeasure17"`
	Measure18    string `json:"strMeasure18"`
	Measure19    string `json:"strMeasure19"`
	Measure20    string `json:"strMeasure20"`
}

// ToRecipe collapses the numbered pairs into a list, dropping blank
// entries. The round trip through a string bag avoids twenty field
// references.
func ToRecipe(m Meal) provider.Recipe {
	ingredients := make([]provider.Ingredient, 0)
	if body, err := json.Marshal(m); err == nil {
		var bagOfStrings map[string]string
		if err := json.Unmarshal(body, &bagOfStrings); err == nil {
			for i := 1; i <= 20; i++ {
				name := strings.TrimSpace(bagOfStrings[fmt.Sprintf("strIngredient%d", i)])
				measure := strings.TrimSpace(bagOfStrings[fmt.Sprintf("strMeasure%d", i)])
				if name == "" {
					continue
				}
				ingredients = append(ingredients, provider.Ingredient{
					Name:    name,
					Measure: measure,
				})
			}
		}
	}
	return provider.Recipe{
		Id:           m.Id,
		Name:         m.Name,
		Category:     m.Category,
		Area:         m.Area,
		Instructions: m.Instructions,
		Thumbnail:    m.Thumbnail,
		Ingredients:  ingredients,
	}
}

// FilteredMeal is the reduced shape returned by filter queries.
type FilteredMeal struct {
	Id        string `json:"idMeal"`
	Name      string `json:"strMeal"`
	Thumbnail string `json:"strMealThumb"`
}

func ToFilteredRecipe(m FilteredMeal) provider.Recipe {
	return provider.Recipe{
		Id:          m.Id,
		Name:        m.Name,
		Thumbnail:   m.Thumbnail,
		Ingredients: make([]provider.Ingredient, 0),
	}
}

type QueryResponse struct {
	Meals []Meal `json:"meals"`
}

type FilterResponse struct {
	Meals []FilteredMeal `json:"meals"`
}
