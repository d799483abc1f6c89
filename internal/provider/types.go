package provider

import "calvillo.me/recetas/internal/data"

// Ingredient is one of the upstream's numbered ingredient/measure pairs,
// kept as raw display strings.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// Recipe is the read-only shape served by an upstream recipe catalog,
// consumed purely for display.
type Recipe struct {
	Id           string       `json:"recipeId"`
	Name         string       `json:"name"`
	Category     string       `json:"category,omitempty"`
	Area         string       `json:"area,omitempty"`
	Instructions string       `json:"instructions,omitempty"`
	Thumbnail    string       `json:"thumbnail,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
}

type FilterInput struct {
	Category       *string
	Area           *string
	MainIngredient *string
}

type RecipeProvider interface {
	Random() (data.QueryResults[Recipe], error)
	Lookup(id string) (data.QueryResults[Recipe], error)
	Search(text string) (data.QueryResults[Recipe], error)
	Filter(input FilterInput) (data.QueryResults[Recipe], error)
}
