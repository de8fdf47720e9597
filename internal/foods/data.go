package foods

import "time"

// Built-in reference collection, used by the memory repo and as the seed for
// the foods migration. Macro figures are per listed serving.
var defaultFoods = []Food{
	{ID: "chicken-breast", Name: "Chicken Breast", Category: CategoryProteins, Protein: 31, Carbs: 0, Fat: 3.6, CalsPerServing: 165, Serving: "4 oz", Tags: []string{"lean", "poultry"}},
	{ID: "salmon", Name: "Salmon", Category: CategoryProteins, Protein: 25, Carbs: 0, Fat: 13, CalsPerServing: 230, Serving: "4 oz", Tags: []string{"fish", "omega-3"}},
	{ID: "ground-turkey", Name: "Ground Turkey", Category: CategoryProteins, Protein: 27, Carbs: 0, Fat: 8, CalsPerServing: 190, Serving: "4 oz", Tags: []string{"lean", "poultry"}},
	{ID: "eggs", Name: "Eggs", Category: CategoryProteins, Protein: 13, Carbs: 1, Fat: 10, CalsPerServing: 140, Serving: "2 large", Tags: []string{"vegetarian"}},
	{ID: "greek-yogurt", Name: "Greek Yogurt", Category: CategoryProteins, Protein: 17, Carbs: 6, Fat: 0.7, CalsPerServing: 100, Serving: "6 oz", Tags: []string{"dairy", "vegetarian"}},
	{ID: "tofu", Name: "Tofu", Category: CategoryProteins, Protein: 10, Carbs: 2, Fat: 6, CalsPerServing: 95, Serving: "4 oz", Tags: []string{"vegan", "soy"}},
	{ID: "lentils", Name: "Lentils", Category: CategoryProteins, Protein: 18, Carbs: 40, Fat: 0.8, CalsPerServing: 230, Serving: "1 cup cooked", Tags: []string{"vegan", "legume"}},
	{ID: "cottage-cheese", Name: "Cottage Cheese", Category: CategoryProteins, Protein: 14, Carbs: 5, Fat: 2.3, CalsPerServing: 90, Serving: "1/2 cup", Tags: []string{"dairy", "vegetarian"}},
	{ID: "brown-rice", Name: "Brown Rice", Category: CategoryCarbs, Protein: 5, Carbs: 45, Fat: 1.8, CalsPerServing: 215, Serving: "1 cup cooked", Tags: []string{"whole-grain", "gluten-free"}},
	{ID: "quinoa", Name: "Quinoa", Category: CategoryCarbs, Protein: 8, Carbs: 39, Fat: 3.6, CalsPerServing: 220, Serving: "1 cup cooked", Tags: []string{"whole-grain", "gluten-free"}},
	{ID: "oats", Name: "Oats", Category: CategoryCarbs, Protein: 5, Carbs: 27, Fat: 2.6, CalsPerServing: 150, Serving: "1/2 cup dry", Tags: []string{"whole-grain"}},
	{ID: "sweet-potato", Name: "Sweet Potato", Category: CategoryCarbs, Protein: 2, Carbs: 26, Fat: 0.1, CalsPerServing: 112, Serving: "1 medium", Tags: []string{"gluten-free"}},
	{ID: "whole-wheat-bread", Name: "Whole Wheat Bread", Category: CategoryCarbs, Protein: 4, Carbs: 14, Fat: 1.1, CalsPerServing: 80, Serving: "1 slice", Tags: []string{"whole-grain"}},
	{ID: "banana", Name: "Banana", Category: CategoryCarbs, Protein: 1.3, Carbs: 27, Fat: 0.4, CalsPerServing: 105, Serving: "1 medium", Tags: []string{"fruit", "gluten-free"}},
	{ID: "black-beans", Name: "Black Beans", Category: CategoryCarbs, Protein: 15, Carbs: 41, Fat: 0.9, CalsPerServing: 227, Serving: "1 cup cooked", Tags: []string{"legume", "vegan"}},
	{ID: "olive-oil", Name: "Olive Oil", Category: CategoryFats, Protein: 0, Carbs: 0, Fat: 14, CalsPerServing: 119, Serving: "1 tbsp", Tags: []string{"vegan"}},
	{ID: "avocado", Name: "Avocado", Category: CategoryFats, Protein: 2, Carbs: 9, Fat: 15, CalsPerServing: 160, Serving: "1/2 fruit", Tags: []string{"vegan"}},
	{ID: "almonds", Name: "Almonds", Category: CategoryFats, Protein: 6, Carbs: 6, Fat: 14, CalsPerServing: 164, Serving: "1 oz", Tags: []string{"nuts", "vegan"}},
	{ID: "peanut-butter", Name: "Peanut Butter", Category: CategoryFats, Protein: 7, Carbs: 7, Fat: 16, CalsPerServing: 190, Serving: "2 tbsp", Tags: []string{"nuts"}},
	{ID: "chia-seeds", Name: "Chia Seeds", Category: CategoryFats, Protein: 4.7, Carbs: 12, Fat: 8.7, CalsPerServing: 138, Serving: "1 oz", Tags: []string{"seeds", "vegan"}},
	{ID: "broccoli", Name: "Broccoli", Category: CategoryVegetables, Protein: 2.6, Carbs: 6, Fat: 0.3, CalsPerServing: 31, Serving: "1 cup", Tags: []string{"cruciferous", "vegan"}},
	{ID: "spinach", Name: "Spinach", Category: CategoryVegetables, Protein: 0.9, Carbs: 1.1, Fat: 0.1, CalsPerServing: 7, Serving: "1 cup raw", Tags: []string{"leafy-green", "vegan"}},
	{ID: "bell-pepper", Name: "Bell Pepper", Category: CategoryVegetables, Protein: 1, Carbs: 7, Fat: 0.3, CalsPerServing: 31, Serving: "1 medium", Tags: []string{"vegan"}},
	{ID: "zucchini", Name: "Zucchini", Category: CategoryVegetables, Protein: 1.5, Carbs: 3.9, Fat: 0.4, CalsPerServing: 21, Serving: "1 cup sliced", Tags: []string{"vegan"}},
}

func init() {
	verified := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := range defaultFoods {
		defaultFoods[i].DataSource = "usda-fdc"
		defaultFoods[i].VerificationLevel = "verified"
		defaultFoods[i].LastVerified = verified
		defaultFoods[i].ConfidenceScore = 0.95
	}
}
