package customrecipes

import "calvillo.me/recetas/internal/data"

// RecipeInput is the request shape for both create and update. On update
// it is the complete desired record: the stored record is replaced, not
// patched.
type RecipeInput struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
	Image        *string `json:"image"`
	Category     *string `json:"category"`
	Area         *string `json:"area"`
	PrepTime     *string `json:"prepTime"`
	Servings     *string `json:"servings"`
	Difficulty   *string `json:"difficulty"`
	CreatedAt    *string `json:"createdAt"`
	CreatedBy    *string `json:"createdBy"`
}

func (r *RecipeInput) ToData() data.CustomRecipeInputDTO {
	return data.CustomRecipeInputDTO{
		Name:         r.Name,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Image:        r.Image,
		Category:     r.Category,
		Area:         r.Area,
		PrepTime:     r.PrepTime,
		Servings:     r.Servings,
		Difficulty:   r.Difficulty,
		CreatedAt:    r.CreatedAt,
		CreatedBy:    r.CreatedBy,
	}
}
