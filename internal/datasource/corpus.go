package datasource

import (
	"time"

	"github.com/foodbridge/foodbridge/internal/models"
)

// The simulated corpus. Hand-authored to cover the shapes the UI exercises:
// localized duplicates (66 and 588 exist in both languages), records with
// and without alt names, and every coarse category class.

func corpusFoods() []models.FoodRecord {
	return []models.FoodRecord{
		{ID: "1", FoodNumber: 66, Name: "Whey cheese app. 30% fat", AltName: "Whey cheese", Language: models.LanguageEnglish, FoodCategory: "Whey products", ImageURL: "image/foods/66_Whey_cheese_app.jpg"},
		{ID: "2", FoodNumber: 70, Name: "Cottage cheese plain 4% fat", AltName: "Cottage cheese", Language: models.LanguageEnglish, FoodCategory: "Fresh cheese and quark", ImageURL: "image/foods/70_Bos_taurus.jpg"},
		{ID: "3", FoodNumber: 71, Name: "Cottage cheese w/ fruit 3% fat", AltName: "Cottage cheese with fruit", Language: models.LanguageEnglish, FoodCategory: "Fresh cheese and quark", ImageURL: "image/foods/71_Cottage_cheese_fruit.jpg"},
		{ID: "4", FoodNumber: 72, Name: "Cottage cheese w/ vegetables 3.5-5% fat", AltName: "Cottage cheese with vegetables", Language: models.LanguageEnglish, FoodCategory: "Fresh cheese and quark", ImageURL: "image/foods/72_Cottage_cheese.jpg"},
		{ID: "5", FoodNumber: 588, Name: "Apple w/ skin", AltName: "Apple with skin", Language: models.LanguageEnglish, FoodCategory: "Fruit fresh", ImageURL: "image/foods/588_Apple.jpg"},
		{ID: "6", FoodNumber: 589, Name: "Apple w/o peel", AltName: "Apple without peel", Language: models.LanguageEnglish, FoodCategory: "Fruit fresh", ImageURL: "image/foods/589_Apple.jpg"},
		{ID: "7", FoodNumber: 550, Name: "Pineapple", Language: models.LanguageEnglish, FoodCategory: "Fruit fresh", ImageURL: "image/foods/550_Pineapple.jpg"},
		{ID: "8", FoodNumber: 590, Name: "Banana", Language: models.LanguageEnglish, FoodCategory: "Fruit fresh", ImageURL: "image/foods/590_Banana.jpg"},
		{ID: "9", FoodNumber: 1200, Name: "Chicken breast grilled", AltName: "Grilled chicken breast", Language: models.LanguageEnglish, FoodCategory: "Meat poultry", ImageURL: "image/foods/1200_Chicken.jpg"},
		{ID: "10", FoodNumber: 1300, Name: "Pasta cooked", AltName: "Cooked pasta", Language: models.LanguageEnglish, FoodCategory: "Cereals pasta", ImageURL: "image/foods/1300_Pasta.jpg"},
		{ID: "11", FoodNumber: 1400, Name: "Rice white cooked", AltName: "Cooked white rice", Language: models.LanguageEnglish, FoodCategory: "Cereals rice", ImageURL: "image/foods/1400_Rice.jpg"},
		{ID: "12", FoodNumber: 1500, Name: "Bread white sliced", AltName: "White bread", Language: models.LanguageEnglish, FoodCategory: "Bread and rolls", ImageURL: "image/foods/1500_Bread.jpg"},
		{ID: "13", FoodNumber: 113, Name: "Human breastmilk", AltName: "Breast milk", Language: models.LanguageEnglish, FoodCategory: "Milk and milk products", ImageURL: "image/foods/113_Milk.jpg"},
		{ID: "14", FoodNumber: 1600, Name: "Milk whole 3.5% fat", AltName: "Whole milk", Language: models.LanguageEnglish, FoodCategory: "Milk and milk products", ImageURL: "image/foods/1600_Milk.jpg"},
		{ID: "15", FoodNumber: 1700, Name: "Yogurt plain", AltName: "Plain yogurt", Language: models.LanguageEnglish, FoodCategory: "Milk and milk products", ImageURL: "image/foods/1700_Yogurt.jpg"},
		{ID: "16", FoodNumber: 66, Name: "Vassleost app. 30% fett", AltName: "Vassleost", Language: models.LanguageSwedish, FoodCategory: "Vassleprodukter", ImageURL: "image/foods/66_Whey_cheese_app.jpg"},
		{ID: "17", FoodNumber: 588, Name: "Äpple med skal", AltName: "Äpple", Language: models.LanguageSwedish, FoodCategory: "Frukt färsk", ImageURL: "image/foods/588_Apple.jpg"},
	}
}

func corpusCategories() []string {
	return []string{
		"Whey products",
		"Fresh cheese and quark",
		"Fruit fresh",
		"Meat poultry",
		"Cereals pasta",
		"Cereals rice",
		"Bread and rolls",
		"Milk and milk products",
		"Vegetables fresh",
		"Fish and seafood",
		"Other fats (lard, tallow, coconut oil)",
		"Mixed origin fat",
		"Artificial sweetener",
		"Sauces and dressings",
	}
}

func corpusSuggestions(now time.Time) []models.Suggestion {
	return []models.Suggestion{
		{
			FoodNumber:      71,
			FoodName:        "Cottage cheese w/ fruit 3% fat",
			ImageURL:        "image/foods/71_Cottage_cheese_fruit.jpg",
			Tags:            []string{"Kid-friendly", "Dairy"},
			Reason:          "Great choice because it has same food category, similar texture and taste",
			ConfidenceScore: 0.85,
			BasedOnFoods:    []int{66, 70, 72},
			CreatedAt:       now,
		},
		{
			FoodNumber:      590,
			FoodName:        "Banana",
			ImageURL:        "image/foods/590_Banana.jpg",
			Tags:            []string{"Kid-friendly", "Sweet"},
			Reason:          "Popular choice for children - naturally sweet and soft texture",
			ConfidenceScore: 0.9,
			BasedOnFoods:    []int{588, 589},
			CreatedAt:       now,
		},
		{
			FoodNumber:      1300,
			FoodName:        "Pasta cooked",
			ImageURL:        "image/foods/1300_Pasta.jpg",
			Tags:            []string{"Kid-friendly", "Comfort food"},
			Reason:          "Familiar texture and mild flavor - great for expanding food preferences",
			ConfidenceScore: 0.8,
			BasedOnFoods:    []int{1400, 1500},
			CreatedAt:       now,
		},
		{
			FoodNumber:      1600,
			FoodName:        "Milk whole 3.5% fat",
			ImageURL:        "image/foods/1600_Milk.jpg",
			Tags:            []string{"Kid-friendly", "Nutrition"},
			Reason:          "Excellent source of calcium and protein - similar creamy texture to liked foods",
			ConfidenceScore: 0.75,
			BasedOnFoods:    []int{66, 70, 71},
			CreatedAt:       now,
		},
	}
}

func corpusExperiences() []models.Experience {
	return []models.Experience{
		{
			ID:         "1",
			UserID:     "mock-user",
			FoodNumber: 66,
			FoodName:   "Whey cheese app. 30% fat",
			Rating:     4,
			Notes:      "Child enjoyed the mild flavor",
			Context:    "snack",
			ChildAge:   "3-5",
			CreatedAt:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:         "2",
			UserID:     "mock-user",
			FoodNumber: 588,
			FoodName:   "Apple w/ skin",
			Rating:     5,
			Notes:      "Loves the crunch and sweetness",
			Context:    "snack",
			ChildAge:   "3-5",
			CreatedAt:  time.Date(2024, 1, 16, 15, 45, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 1, 16, 15, 45, 0, 0, time.UTC),
		},
	}
}

func corpusStats() models.UserStats {
	return models.UserStats{
		TotalFoodsTried:    12,
		PositiveFoods:      8,
		PositivePercentage: 67,
		Streak:             3,
		RecentAchievements: []string{
			"Tried 5 new fruits this week!",
			"First time enjoying dairy products",
			"Completed a full meal with vegetables",
		},
	}
}
