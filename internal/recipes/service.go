// Package recipes is the only mediator between application code and the
// remote custom-recipe store. Write operations come back as uniform
// results instead of raw errors; failed reads come back as empty
// sequences after logging, which callers cannot tell apart from a
// legitimately empty namespace.
package recipes

import (
	"time"

	"github.com/rs/zerolog"
	"calvillo.me/recetas/internal/data"
)

type RecipesService struct {
	Store  data.CustomRecipeStore
	Logger zerolog.Logger
}

func NewRecipesService(store data.CustomRecipeStore, logger zerolog.Logger) *RecipesService {
	return &RecipesService{
		Store:  store,
		Logger: logger,
	}
}

// WriteResult is the outcome of a create, update, or delete. RecipeId is
// only set on successful creates.
type WriteResult struct {
	Success  bool   `json:"success"`
	RecipeId string `json:"recipeId,omitempty"`
	Error    string `json:"error,omitempty"`
}

func _succeeded(recipeId string) WriteResult {
	return WriteResult{Success: true, RecipeId: recipeId}
}

func _failed(err error) WriteResult {
	return WriteResult{Success: false, Error: err.Error()}
}

func _value(field *string) string {
	if field == nil {
		return ""
	}
	return *field
}

func _valueOr(field *string, fallback string) string {
	if field == nil || *field == "" {
		return fallback
	}
	return *field
}

func _now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// CreateRecipe writes a full record under a fresh store-generated key in
// the owner's namespace. Optional fields receive their documented
// defaults; name, description, ingredients and instructions are written
// as given, without validation.
func (rs *RecipesService) CreateRecipe(ownerId string, input data.CustomRecipeInputDTO) WriteResult {
	recipeId, err := rs.Store.GenerateKey(ownerId)
	if err != nil {
		rs.Logger.Error().Err(err).Str("ownerId", ownerId).Msg("Failed to generate a recipe key")
		return _failed(err)
	}
	record := data.CustomRecipeDTO{
		Id:           recipeId,
		Name:         _value(input.Name),
		Description:  _value(input.Description),
		Ingredients:  _value(input.Ingredients),
		Instructions: _value(input.Instructions),
		Image:        _valueOr(input.Image, data.DefaultImage),
		Category:     _valueOr(input.Category, data.DefaultCategory),
		Area:         _valueOr(input.Area, data.DefaultArea),
		PrepTime:     _valueOr(input.PrepTime, data.DefaultPrepTime),
		Servings:     _valueOr(input.Servings, data.DefaultServings),
		Difficulty:   _valueOr(input.Difficulty, data.DefaultDifficulty),
		CreatedAt:    _now(),
		CreatedBy:    ownerId,
	}
	if err := rs.Store.Write(ownerId, recipeId, record); err != nil {
		rs.Logger.Error().Err(err).Str("ownerId", ownerId).Msg("Failed to create a recipe")
		return _failed(err)
	}
	return _succeeded(recipeId)
}

// GetUserRecipes reads the owner's whole namespace. An absent namespace
// and a failed read both produce an empty sequence; the failure is only
// visible in the log.
func (rs *RecipesService) GetUserRecipes(ownerId string) []data.CustomRecipeDTO {
	records, err := rs.Store.ReadOwner(ownerId)
	if err != nil {
		rs.Logger.Error().Err(err).Str("ownerId", ownerId).Msg("Failed to read recipes")
		return []data.CustomRecipeDTO{}
	}
	if records == nil {
		return []data.CustomRecipeDTO{}
	}
	return records
}

// GetAllCustomRecipes flattens every owner namespace into one sequence,
// grouped by owner. No de-duplication, no cross-owner sort.
func (rs *RecipesService) GetAllCustomRecipes() []data.CustomRecipeDTO {
	records, err := rs.Store.ReadAll()
	if err != nil {
		rs.Logger.Error().Err(err).Msg("Failed to read the recipe feed")
		return []data.CustomRecipeDTO{}
	}
	if records == nil {
		return []data.CustomRecipeDTO{}
	}
	return records
}

// UpdateRecipe replaces the record at ownerId/recipeId with exactly the
// supplied fields plus a fresh updatedAt. Omitted fields are dropped, not
// merged or re-defaulted; callers supply the complete desired record.
// Updating an absent path creates it.
func (rs *RecipesService) UpdateRecipe(ownerId string, recipeId string, input data.CustomRecipeInputDTO) WriteResult {
	record := data.CustomRecipeDTO{
		Name:         _value(input.Name),
		Description:  _value(input.Description),
		Ingredients:  _value(input.Ingredients),
		Instructions: _value(input.Instructions),
		Image:        _value(input.Image),
		Category:     _value(input.Category),
		Area:         _value(input.Area),
		PrepTime:     _value(input.PrepTime),
		Servings:     _value(input.Servings),
		Difficulty:   _value(input.Difficulty),
		CreatedAt:    _value(input.CreatedAt),
		CreatedBy:    _value(input.CreatedBy),
		UpdatedAt:    _now(),
	}
	if err := rs.Store.Write(ownerId, recipeId, record); err != nil {
		rs.Logger.Error().Err(err).Str("ownerId", ownerId).Str("recipeId", recipeId).Msg("Failed to update a recipe")
		return _failed(err)
	}
	return WriteResult{Success: true}
}

// DeleteRecipe removes the record. Deleting an absent path succeeds.
func (rs *RecipesService) DeleteRecipe(ownerId string, recipeId string) WriteResult {
	if err := rs.Store.Delete(ownerId, recipeId); err != nil {
		rs.Logger.Error().Err(err).Str("ownerId", ownerId).Str("recipeId", recipeId).Msg("Failed to delete a recipe")
		return _failed(err)
	}
	return WriteResult{Success: true}
}

// ListenToUserRecipes invokes callback with the full namespace contents on
// every change until the returned handle is called. The callback never
// sees nil; an absent namespace arrives as an empty sequence.
func (rs *RecipesService) ListenToUserRecipes(ownerId string, callback func([]data.CustomRecipeDTO)) (data.Unsubscribe, error) {
	return rs.Store.Subscribe(ownerId, func(records []data.CustomRecipeDTO) {
		if records == nil {
			records = []data.CustomRecipeDTO{}
		}
		callback(records)
	})
}
