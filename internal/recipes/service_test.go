package recipes_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"calvillo.me/recetas/internal/data"
	"calvillo.me/recetas/internal/recipes"
	"calvillo.me/recetas/internal/test"
)

func _service(store data.CustomRecipeStore) *recipes.RecipesService {
	return recipes.NewRecipesService(store, zerolog.Nop())
}

func _ptr(s string) *string {
	return &s
}

func _fullInput(name string) data.CustomRecipeInputDTO {
	return data.CustomRecipeInputDTO{
		Name:         _ptr(name),
		Description:  _ptr("A family favorite"),
		Ingredients:  _ptr("2 eggs, 1 cup flour"),
		Instructions: _ptr("Mix and bake"),
		Image:        _ptr("https://example.com/cake.png"),
		Category:     _ptr("Postre"),
		Area:         _ptr("Mexicana"),
		PrepTime:     _ptr("45 min"),
		Servings:     _ptr("8"),
		Difficulty:   _ptr("Alta"),
	}
}

func TestCreateRecipe(t *testing.T) {
	t.Run("AppliesDefaults", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		service := _service(store)
		result := service.CreateRecipe("smithj", data.CustomRecipeInputDTO{
			Name:         _ptr("Tortilla"),
			Description:  _ptr("Simple"),
			Ingredients:  _ptr("Eggs, potatoes"),
			Instructions: _ptr("Fry"),
		})
		if !result.Success || result.RecipeId == "" {
			t.Fatalf("Create failed: %+v", result)
		}
		saved := service.GetUserRecipes("smithj")
		if len(saved) != 1 {
			t.Fatalf("Expected 1 recipe, got %d", len(saved))
		}
		record := saved[0]
		if record.Id != result.RecipeId {
			t.Errorf("Expected id %s, got %s", result.RecipeId, record.Id)
		}
		if record.Image != data.DefaultImage {
			t.Errorf("Expected default image, got %s", record.Image)
		}
		if record.Category != data.DefaultCategory || record.Area != data.DefaultArea {
			t.Errorf("Expected default category/area, got %s/%s", record.Category, record.Area)
		}
		if record.PrepTime != data.DefaultPrepTime || record.Servings != data.DefaultServings {
			t.Errorf("Expected default prepTime/servings, got %s/%s", record.PrepTime, record.Servings)
		}
		if record.Difficulty != data.DefaultDifficulty {
			t.Errorf("Expected default difficulty, got %s", record.Difficulty)
		}
		if record.CreatedBy != "smithj" {
			t.Errorf("Expected createdBy smithj, got %s", record.CreatedBy)
		}
		if _, err := time.Parse(time.RFC3339, record.CreatedAt); err != nil {
			t.Errorf("CreatedAt is not a timestamp: %s", record.CreatedAt)
		}
		if record.UpdatedAt != "" {
			t.Errorf("Fresh record should not carry updatedAt: %s", record.UpdatedAt)
		}
	})

	t.Run("EmptyStringsDefaultLikeAbsent", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		service := _service(store)
		result := service.CreateRecipe("smithj", data.CustomRecipeInputDTO{
			Name:  _ptr("Tortilla"),
			Image: _ptr(""),
			Area:  _ptr(""),
		})
		if !result.Success {
			t.Fatalf("Create failed: %+v", result)
		}
		record := service.GetUserRecipes("smithj")[0]
		if record.Image != data.DefaultImage {
			t.Errorf("Expected default image, got %s", record.Image)
		}
		if record.Area != data.DefaultArea {
			t.Errorf("Expected default area, got %s", record.Area)
		}
	})

	t.Run("KeepsSuppliedOptionalFields", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		service := _service(store)
		result := service.CreateRecipe("smithj", _fullInput("Cake"))
		if !result.Success {
			t.Fatalf("Create failed: %+v", result)
		}
		record := service.GetUserRecipes("smithj")[0]
		if record.Image != "https://example.com/cake.png" {
			t.Errorf("Supplied image was replaced: %s", record.Image)
		}
		if record.Difficulty != "Alta" {
			t.Errorf("Supplied difficulty was replaced: %s", record.Difficulty)
		}
	})

	t.Run("ConvertsWriteFailure", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		store.WriteErr = errors.New("PERMISSION_DENIED")
		service := _service(store)
		result := service.CreateRecipe("smithj", _fullInput("Cake"))
		if result.Success {
			t.Fatal("Expected a failed result")
		}
		if result.Error != "PERMISSION_DENIED" {
			t.Errorf("Expected the store error, got %s", result.Error)
		}
		if result.RecipeId != "" {
			t.Errorf("Failed create should not carry a recipeId: %s", result.RecipeId)
		}
	})
}

func TestGetUserRecipes(t *testing.T) {
	t.Run("EmptyOnAbsentNamespace", func(t *testing.T) {
		service := _service(test.NewMemoryRecipeStore())
		records := service.GetUserRecipes("nobody")
		if records == nil || len(records) != 0 {
			t.Fatalf("Expected an empty sequence, got %v", records)
		}
	})

	t.Run("EmptyOnReadFailure", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		service := _service(store)
		service.CreateRecipe("smithj", _fullInput("Cake"))
		store.ReadErr = errors.New("UNAVAILABLE")
		records := service.GetUserRecipes("smithj")
		if records == nil || len(records) != 0 {
			t.Fatalf("Expected an empty sequence on failure, got %v", records)
		}
	})

	t.Run("ScopedToOwner", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		service := _service(store)
		service.CreateRecipe("smithj", _fullInput("Cake"))
		service.CreateRecipe("doej", _fullInput("Soup"))
		records := service.GetUserRecipes("smithj")
		if len(records) != 1 || records[0].Name != "Cake" {
			t.Fatalf("Expected only smithj's recipes, got %v", records)
		}
	})
}

func TestGetAllCustomRecipes(t *testing.T) {
	t.Run("UnionAcrossOwners", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		service := _service(store)
		service.CreateRecipe("alpha", _fullInput("Cake"))
		service.CreateRecipe("alpha", _fullInput("Soup"))
		service.CreateRecipe("beta", _fullInput("Bread"))
		records := service.GetAllCustomRecipes()
		if len(records) != 3 {
			t.Fatalf("Expected 3 recipes, got %d", len(records))
		}
		byOwner := make(map[string]int)
		for _, record := range records {
			byOwner[record.CreatedBy]++
		}
		if byOwner["alpha"] != 2 || byOwner["beta"] != 1 {
			t.Errorf("Unexpected owner grouping: %v", byOwner)
		}
	})

	t.Run("GroupedByOwner", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		service := _service(store)
		service.CreateRecipe("beta", _fullInput("Bread"))
		service.CreateRecipe("alpha", _fullInput("Cake"))
		service.CreateRecipe("beta", _fullInput("Soup"))
		records := service.GetAllCustomRecipes()
		var owners []string
		for _, record := range records {
			if len(owners) == 0 || owners[len(owners)-1] != record.CreatedBy {
				owners = append(owners, record.CreatedBy)
			}
		}
		if len(owners) != 2 {
			t.Fatalf("Owner namespaces interleaved: %v", owners)
		}
	})

	t.Run("EmptyOnReadFailure", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		store.ReadErr = errors.New("UNAVAILABLE")
		records := _service(store).GetAllCustomRecipes()
		if records == nil || len(records) != 0 {
			t.Fatalf("Expected an empty sequence on failure, got %v", records)
		}
	})
}

func TestUpdateRecipe(t *testing.T) {
	t.Run("ReplacesWholeRecord", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		service := _service(store)
		created := service.CreateRecipe("smithj", _fullInput("Cake"))
		result := service.UpdateRecipe("smithj", created.RecipeId, data.CustomRecipeInputDTO{
			Name:         _ptr("Cake v2"),
			Description:  _ptr("Improved"),
			Ingredients:  _ptr("3 eggs"),
			Instructions: _ptr("Bake longer"),
		})
		if !result.Success {
			t.Fatalf("Update failed: %+v", result)
		}
		record := service.GetUserRecipes("smithj")[0]
		if record.Name != "Cake v2" {
			t.Errorf("Expected replaced name, got %s", record.Name)
		}
		if record.Image != "" || record.Category != "" || record.CreatedBy != "" {
			t.Errorf("Omitted fields survived the replace: %+v", record)
		}
		if _, err := time.Parse(time.RFC3339, record.UpdatedAt); err != nil {
			t.Errorf("UpdatedAt is not a timestamp: %s", record.UpdatedAt)
		}
	})

	t.Run("DoesNotReapplyDefaults", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		service := _service(store)
		created := service.CreateRecipe("smithj", _fullInput("Cake"))
		service.UpdateRecipe("smithj", created.RecipeId, data.CustomRecipeInputDTO{
			Name: _ptr("Cake v2"),
		})
		record := service.GetUserRecipes("smithj")[0]
		if record.Image == data.DefaultImage || record.Difficulty == data.DefaultDifficulty {
			t.Errorf("Update re-defaulted omitted fields: %+v", record)
		}
	})

	t.Run("UpsertsAbsentPath", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		service := _service(store)
		result := service.UpdateRecipe("smithj", "no-such-recipe", data.CustomRecipeInputDTO{
			Name: _ptr("Phantom"),
		})
		if !result.Success {
			t.Fatalf("Update failed: %+v", result)
		}
		records := service.GetUserRecipes("smithj")
		if len(records) != 1 || records[0].Id != "no-such-recipe" {
			t.Fatalf("Expected the path to be created, got %v", records)
		}
	})

	t.Run("ConvertsWriteFailure", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		store.WriteErr = errors.New("PERMISSION_DENIED")
		result := _service(store).UpdateRecipe("smithj", "abc", data.CustomRecipeInputDTO{})
		if result.Success || result.Error != "PERMISSION_DENIED" {
			t.Fatalf("Expected a failed result, got %+v", result)
		}
	})
}

func TestDeleteRecipe(t *testing.T) {
	t.Run("RemovesRecord", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		service := _service(store)
		created := service.CreateRecipe("smithj", _fullInput("Cake"))
		result := service.DeleteRecipe("smithj", created.RecipeId)
		if !result.Success {
			t.Fatalf("Delete failed: %+v", result)
		}
		if records := service.GetUserRecipes("smithj"); len(records) != 0 {
			t.Fatalf("Expected the record to be gone, got %v", records)
		}
	})

	t.Run("IdempotentOnAbsentPath", func(t *testing.T) {
		service := _service(test.NewMemoryRecipeStore())
		result := service.DeleteRecipe("smithj", "never-existed")
		if !result.Success {
			t.Fatalf("Expected success on an absent path, got %+v", result)
		}
	})
}

func TestListenToUserRecipes(t *testing.T) {
	t.Run("DeliversSnapshotsUntilUnsubscribed", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		service := _service(store)
		var snapshots [][]data.CustomRecipeDTO
		unsubscribe, err := service.ListenToUserRecipes("smithj", func(records []data.CustomRecipeDTO) {
			snapshots = append(snapshots, records)
		})
		if err != nil {
			t.Fatalf("Failed to subscribe: %s", err)
		}
		if len(snapshots) != 1 || len(snapshots[0]) != 0 {
			t.Fatalf("Expected an initial empty snapshot, got %v", snapshots)
		}
		created := service.CreateRecipe("smithj", _fullInput("Cake"))
		if len(snapshots) != 2 {
			t.Fatalf("Expected a snapshot after create, got %d", len(snapshots))
		}
		latest := snapshots[len(snapshots)-1]
		if len(latest) != 1 || latest[0].Id != created.RecipeId {
			t.Fatalf("Snapshot missing the new record: %v", latest)
		}
		unsubscribe()
		service.DeleteRecipe("smithj", created.RecipeId)
		if len(snapshots) != 2 {
			t.Fatalf("Received a snapshot after unsubscribing: %d", len(snapshots))
		}
	})

	t.Run("IgnoresOtherOwners", func(t *testing.T) {
		store := test.NewMemoryRecipeStore()
		service := _service(store)
		calls := 0
		unsubscribe, err := service.ListenToUserRecipes("smithj", func([]data.CustomRecipeDTO) {
			calls++
		})
		if err != nil {
			t.Fatalf("Failed to subscribe: %s", err)
		}
		defer unsubscribe()
		service.CreateRecipe("doej", _fullInput("Soup"))
		if calls != 1 {
			t.Fatalf("Expected only the initial snapshot, got %d calls", calls)
		}
	})
}

func TestRecipeLifecycle(t *testing.T) {
	store := test.NewMemoryRecipeStore()
	service := _service(store)
	created := service.CreateRecipe("smithj", data.CustomRecipeInputDTO{
		Name:         _ptr("Soup"),
		Description:  _ptr("Warm"),
		Ingredients:  _ptr("Water, salt"),
		Instructions: _ptr("Boil"),
	})
	if !created.Success {
		t.Fatalf("Create failed: %+v", created)
	}
	updated := service.UpdateRecipe("smithj", created.RecipeId, data.CustomRecipeInputDTO{
		Name:         _ptr("Soup v2"),
		Description:  _ptr("Warmer"),
		Ingredients:  _ptr("Water, salt, pepper"),
		Instructions: _ptr("Boil twice"),
	})
	if !updated.Success {
		t.Fatalf("Update failed: %+v", updated)
	}
	record := service.GetUserRecipes("smithj")[0]
	if record.Name != "Soup v2" || record.UpdatedAt == "" {
		t.Fatalf("Unexpected record after update: %+v", record)
	}
	if deleted := service.DeleteRecipe("smithj", created.RecipeId); !deleted.Success {
		t.Fatalf("Delete failed: %+v", deleted)
	}
	if records := service.GetUserRecipes("smithj"); len(records) != 0 {
		t.Fatalf("Expected an empty namespace, got %v", records)
	}
}
