package recipe

import (
	"context"
	"errors"
	"mime/multipart"
	"sort"
	"testing"

	"gorm.io/gorm"

	"HealthPantry-Backend/domain"
	"HealthPantry-Backend/entities"
)

type fakeRecipeRepo struct {
	recipes map[string]*entities.Recipe
	nextPos int
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: map[string]*entities.Recipe{}}
}

func (f *fakeRecipeRepo) AddRecipe(ctx context.Context, recipe *entities.Recipe) error {
	f.recipes[recipe.ID.String()] = recipe
	return nil
}

func (f *fakeRecipeRepo) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (f *fakeRecipeRepo) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	f.recipes[recipe.ID.String()] = recipe
	return nil
}

func (f *fakeRecipeRepo) DeleteRecipe(ctx context.Context, id string) error {
	delete(f.recipes, id)
	return nil
}

func (f *fakeRecipeRepo) GetRecipes(ctx context.Context, mealType string, page, limit int) ([]*entities.Recipe, int64, error) {
	recipes, err := f.GetCatalog(ctx, mealType)
	return recipes, int64(len(recipes)), err
}

func (f *fakeRecipeRepo) GetCatalog(ctx context.Context, mealType string) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, r := range f.recipes {
		if mealType == "" || r.MealType == mealType {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (f *fakeRecipeRepo) NextPosition(ctx context.Context) (int, error) {
	f.nextPos++
	return f.nextPos, nil
}

type noopS3 struct{}

func (noopS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	return dir + "/" + fileName, nil
}
func (noopS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return objectKey, nil
}
func (noopS3) DeleteFile(objectKey string) error        { return nil }
func (noopS3) GetPublicLinkKey(objectKey string) string { return "https://cdn.test/" + objectKey }
func (noopS3) GetObjectKeyFromLink(link string) string  { return "" }

func TestAddRecipeAssignsPositionsAndTags(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepo(), noopS3{})

	res, err := svc.AddRecipe(context.Background(), domain.AddRecipeRequest{
		Name:        "Green Smoothie",
		MealType:    "Breakfast",
		DietaryTags: []string{"vegan", "gluten-free"},
		Ingredients: []string{"2 cups spinach", "1 banana"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.DietaryTags) != 2 || res.DietaryTags[0] != "vegan" {
		t.Errorf("dietary tags = %v", res.DietaryTags)
	}
	if len(res.Ingredients) != 2 || res.Ingredients[0] != "2 cups spinach" {
		t.Errorf("ingredients kept as free text, got %v", res.Ingredients)
	}
	if res.Position == 0 {
		t.Errorf("catalog position should be assigned")
	}

	_, err = svc.AddRecipe(context.Background(), domain.AddRecipeRequest{
		Name: "Mystery Meal", MealType: "Brunch",
	})
	if !errors.Is(err, domain.ErrUnknownMealType) {
		t.Errorf("got %v, want ErrUnknownMealType", err)
	}
}

func TestGetCatalogFiltersAndOrders(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepo(), noopS3{})
	ctx := context.Background()

	for _, r := range []domain.AddRecipeRequest{
		{Name: "Omelette", MealType: "Breakfast", Ingredients: []string{"3 eggs"}},
		{Name: "Chicken Rice", MealType: "Dinner", Ingredients: []string{"1 lb chicken"}},
		{Name: "Pancakes", MealType: "Breakfast", Ingredients: []string{"1 cup flour"}},
	} {
		if _, err := svc.AddRecipe(ctx, r); err != nil {
			t.Fatalf("add %s: %v", r.Name, err)
		}
	}

	catalog, err := svc.GetCatalog(ctx, "Breakfast")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("expected 2 breakfast recipes, got %d", len(catalog))
	}
	if catalog[0].Name != "Omelette" || catalog[1].Name != "Pancakes" {
		t.Errorf("catalog order should follow positions, got %s then %s", catalog[0].Name, catalog[1].Name)
	}

	if _, err := svc.GetCatalog(ctx, "Brunch"); !errors.Is(err, domain.ErrUnknownMealType) {
		t.Errorf("got %v, want ErrUnknownMealType", err)
	}
}
