package data

// Defaults applied when a recipe is created without the optional fields.
// The literals match what the mobile clients already render.
const (
	DefaultImage      = "https://via.placeholder.com/300x200?text=Sin+Imagen"
	DefaultCategory   = "Personalizada"
	DefaultArea       = "Personalizada"
	DefaultPrepTime   = "No especificado"
	DefaultServings   = "No especificado"
	DefaultDifficulty = "Media"
)

// CustomRecipeDTO is the stored shape of one user-authored recipe. Id is
// derived from the record's child key on read and never persisted as an
// attribute. Optional fields marshal as absent when empty, so a replace
// that omits them really drops them.
type CustomRecipeDTO struct {
	Id           string `dynamodbav:"-" json:"id"`
	Name         string `dynamodbav:"name" json:"name"`
	Description  string `dynamodbav:"description" json:"description"`
	Ingredients  string `dynamodbav:"ingredients" json:"ingredients"`
	Instructions string `dynamodbav:"instructions" json:"instructions"`
	Image        string `dynamodbav:"image,omitempty" json:"image,omitempty"`
	Category     string `dynamodbav:"category,omitempty" json:"category,omitempty"`
	Area         string `dynamodbav:"area,omitempty" json:"area,omitempty"`
	PrepTime     string `dynamodbav:"prepTime,omitempty" json:"prepTime,omitempty"`
	Servings     string `dynamodbav:"servings,omitempty" json:"servings,omitempty"`
	Difficulty   string `dynamodbav:"difficulty,omitempty" json:"difficulty,omitempty"`
	CreatedAt    string `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    string `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	CreatedBy    string `dynamodbav:"createdBy,omitempty" json:"createdBy,omitempty"`
}

type CustomRecipeInputDTO struct {
	Name         *string `dynamodbav:"name"`
	Description  *string `dynamodbav:"description"`
	Ingredients  *string `dynamodbav:"ingredients"`
	Instructions *string `dynamodbav:"instructions"`
	Image        *string `dynamodbav:"image"`
	Category     *string `dynamodbav:"category"`
	Area         *string `dynamodbav:"area"`
	PrepTime     *string `dynamodbav:"prepTime"`
	Servings     *string `dynamodbav:"servings"`
	Difficulty   *string `dynamodbav:"difficulty"`
	CreatedAt    *string `dynamodbav:"createdAt"`
	CreatedBy    *string `dynamodbav:"createdBy"`
}

type Unsubscribe func()

// CustomRecipeStore is the remote document store contract for custom
// recipes. Records live under customRecipes/{ownerId}/{recipeId}; the owner
// namespace is the only sharding level. Implementations guarantee:
// generated keys are unique within a namespace and ordered by creation,
// deletes of absent paths succeed, reads of absent namespaces return no
// items, and subscriptions deliver the full namespace on every change until
// the returned handle is invoked. No cross-namespace atomicity or ordering
// is provided.
type CustomRecipeStore interface {
	GenerateKey(ownerId string) (string, error)
	Write(ownerId string, recipeId string, record CustomRecipeDTO) error
	ReadOwner(ownerId string) ([]CustomRecipeDTO, error)
	ReadAll() ([]CustomRecipeDTO, error)
	Delete(ownerId string, recipeId string) error
	Subscribe(ownerId string, fn func([]CustomRecipeDTO)) (Unsubscribe, error)
}
