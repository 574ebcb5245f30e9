package catalog

import "naijakart/internal/models"

var defaultCategories = []string{
	CategoryAll,
	"Vegetables",
	"Fruits",
	"Grains & Rice",
	"Snacks",
	"Beverages",
	"Meat & Fish",
	"Spices",
	"Oil & Cooking",
}

// defaultProducts is the demo inventory. Prices are in Naira.
var defaultProducts = []models.Product{
	{
		ID:            "1",
		Name:          "Fresh Tomatoes",
		Price:         1500,
		OriginalPrice: 2000,
		Image:         "/api/placeholder/300/200",
		Category:      "Vegetables",
		Description:   "Fresh, juicy tomatoes perfect for cooking and salads",
		InStock:       true,
		Unit:          "per basket",
		Rating:        4.5,
		ReviewCount:   128,
		Tags:          []string{"fresh", "local", "organic"},
	},
	{
		ID:            "2",
		Name:          "Fresh Pepper (Ata Rodo)",
		Price:         800,
		OriginalPrice: 1000,
		Image:         "/api/placeholder/300/200",
		Category:      "Vegetables",
		Description:   "Spicy red peppers for authentic Nigerian dishes",
		InStock:       true,
		Unit:          "per cup",
		Rating:        4.3,
		ReviewCount:   89,
		Tags:          []string{"spicy", "fresh", "local"},
	},
	{
		ID:          "3",
		Name:        "Garden Egg",
		Price:       1200,
		Image:       "/api/placeholder/300/200",
		Category:    "Vegetables",
		Description: "Fresh garden eggs, perfect for sauce and stews",
		InStock:     true,
		Unit:        "per pile",
		Rating:      4.2,
		ReviewCount: 67,
		Tags:        []string{"fresh", "nutritious", "local"},
	},
	{
		ID:          "4",
		Name:        "Green Vegetables (Ugu)",
		Price:       500,
		Image:       "/api/placeholder/300/200",
		Category:    "Vegetables",
		Description: "Fresh pumpkin leaves for soup and stew",
		InStock:     true,
		Unit:        "per bunch",
		Rating:      4.6,
		ReviewCount: 145,
		Tags:        []string{"leafy", "nutritious", "fresh"},
	},
	{
		ID:            "5",
		Name:          "Sweet Oranges",
		Price:         2000,
		OriginalPrice: 2500,
		Image:         "/api/placeholder/300/200",
		Category:      "Fruits",
		Description:   "Sweet and juicy oranges packed with Vitamin C",
		InStock:       true,
		Unit:          "per dozen",
		Rating:        4.4,
		ReviewCount:   203,
		Tags:          []string{"sweet", "citrus", "vitamin-c"},
	},
	{
		ID:          "6",
		Name:        "Ripe Bananas",
		Price:       1000,
		Image:       "/api/placeholder/300/200",
		Category:    "Fruits",
		Description: "Sweet ripe bananas perfect for snacking",
		InStock:     true,
		Unit:        "per hand",
		Rating:      4.7,
		ReviewCount: 312,
		Tags:        []string{"sweet", "ripe", "energy"},
	},
	{
		ID:          "7",
		Name:        "Watermelon",
		Price:       3500,
		Image:       "/api/placeholder/300/200",
		Category:    "Fruits",
		Description: "Fresh and juicy watermelon, perfect for hot days",
		InStock:     true,
		Unit:        "per piece",
		Rating:      4.5,
		ReviewCount: 156,
		Tags:        []string{"juicy", "refreshing", "large"},
	},
	{
		ID:          "8",
		Name:        "Pineapple",
		Price:       1500,
		Image:       "/api/placeholder/300/200",
		Category:    "Fruits",
		Description: "Sweet and tangy pineapple, fully ripe",
		InStock:     true,
		Unit:        "per piece",
		Rating:      4.3,
		ReviewCount: 98,
		Tags:        []string{"sweet", "tropical", "ripe"},
	},
	{
		ID:            "9",
		Name:          "Local Rice (Ofada)",
		Price:         8000,
		OriginalPrice: 9000,
		Image:         "/api/placeholder/300/200",
		Category:      "Grains & Rice",
		Description:   "Premium quality Ofada rice, locally grown",
		InStock:       true,
		Unit:          "per 5kg bag",
		Rating:        4.8,
		ReviewCount:   267,
		Tags:          []string{"local", "premium", "organic"},
	},
	{
		ID:          "10",
		Name:        "White Rice",
		Price:       6500,
		Image:       "/api/placeholder/300/200",
		Category:    "Grains & Rice",
		Description: "High quality parboiled white rice",
		InStock:     true,
		Unit:        "per 5kg bag",
		Rating:      4.4,
		ReviewCount: 189,
		Tags:        []string{"parboiled", "quality", "staple"},
	},
	{
		ID:          "11",
		Name:        "Beans (Brown)",
		Price:       4500,
		Image:       "/api/placeholder/300/200",
		Category:    "Grains & Rice",
		Description: "Premium brown beans for porridge and stew",
		InStock:     true,
		Unit:        "per 3kg bag",
		Rating:      4.6,
		ReviewCount: 178,
		Tags:        []string{"protein", "brown", "nutritious"},
	},
	{
		ID:          "12",
		Name:        "Plantain Chips",
		Price:       1200,
		Image:       "/api/placeholder/300/200",
		Category:    "Snacks",
		Description: "Crispy plantain chips, locally made",
		InStock:     true,
		Unit:        "per pack",
		Rating:      4.2,
		ReviewCount: 145,
		Tags:        []string{"crispy", "local", "snack"},
	},
	{
		ID:          "13",
		Name:        "Groundnuts (Roasted)",
		Price:       800,
		Image:       "/api/placeholder/300/200",
		Category:    "Snacks",
		Description: "Freshly roasted groundnuts",
		InStock:     true,
		Unit:        "per cup",
		Rating:      4.5,
		ReviewCount: 234,
		Tags:        []string{"roasted", "protein", "crunchy"},
	},
	{
		ID:          "14",
		Name:        "Coconut Cookies",
		Price:       1500,
		Image:       "/api/placeholder/300/200",
		Category:    "Snacks",
		Description: "Homemade coconut cookies",
		InStock:     true,
		Unit:        "per pack",
		Rating:      4.3,
		ReviewCount: 87,
		Tags:        []string{"homemade", "coconut", "sweet"},
	},
	{
		ID:          "15",
		Name:        "Fresh Zobo Drink",
		Price:       500,
		Image:       "/api/placeholder/300/200",
		Category:    "Beverages",
		Description: "Refreshing zobo drink with natural spices",
		InStock:     true,
		Unit:        "per bottle",
		Rating:      4.4,
		ReviewCount: 156,
		Tags:        []string{"refreshing", "natural", "spiced"},
	},
	{
		ID:          "16",
		Name:        "Palm Wine",
		Price:       800,
		Image:       "/api/placeholder/300/200",
		Category:    "Beverages",
		Description: "Fresh palm wine, traditionally tapped",
		InStock:     true,
		Unit:        "per bottle",
		Rating:      4.1,
		ReviewCount: 92,
		Tags:        []string{"traditional", "fresh", "local"},
	},
	{
		ID:          "17",
		Name:        "Pure Water",
		Price:       300,
		Image:       "/api/placeholder/300/200",
		Category:    "Beverages",
		Description: "Clean drinking water in sachets",
		InStock:     true,
		Unit:        "per bag (20 sachets)",
		Rating:      4.0,
		ReviewCount: 445,
		Tags:        []string{"clean", "pure", "essential"},
	},
	{
		ID:          "18",
		Name:        "Fresh Chicken",
		Price:       4500,
		Image:       "/api/placeholder/300/200",
		Category:    "Meat & Fish",
		Description: "Fresh locally raised chicken",
		InStock:     true,
		Unit:        "per kg",
		Rating:      4.6,
		ReviewCount: 198,
		Tags:        []string{"fresh", "local", "protein"},
	},
	{
		ID:          "19",
		Name:        "Catfish (Fresh)",
		Price:       3500,
		Image:       "/api/placeholder/300/200",
		Category:    "Meat & Fish",
		Description: "Fresh catfish from local farms",
		InStock:     true,
		Unit:        "per kg",
		Rating:      4.5,
		ReviewCount: 167,
		Tags:        []string{"fresh", "farm", "fish"},
	},
	{
		ID:          "20",
		Name:        "Curry Powder",
		Price:       600,
		Image:       "/api/placeholder/300/200",
		Category:    "Spices",
		Description: "Aromatic curry powder for seasoning",
		InStock:     true,
		Unit:        "per pack",
		Rating:      4.3,
		ReviewCount: 134,
		Tags:        []string{"aromatic", "seasoning", "spice"},
	},
	{
		ID:          "21",
		Name:        "Maggi Cubes",
		Price:       400,
		Image:       "/api/placeholder/300/200",
		Category:    "Spices",
		Description: "Maggi seasoning cubes for cooking",
		InStock:     true,
		Unit:        "per pack",
		Rating:      4.7,
		ReviewCount: 389,
		Tags:        []string{"seasoning", "cooking", "flavor"},
	},
	{
		ID:          "22",
		Name:        "Palm Oil (Red Oil)",
		Price:       2500,
		Image:       "/api/placeholder/300/200",
		Category:    "Oil & Cooking",
		Description: "Pure red palm oil for cooking",
		InStock:     true,
		Unit:        "per bottle (1 liter)",
		Rating:      4.5,
		ReviewCount: 223,
		Tags:        []string{"pure", "cooking", "traditional"},
	},
	{
		ID:          "23",
		Name:        "Groundnut Oil",
		Price:       3000,
		Image:       "/api/placeholder/300/200",
		Category:    "Oil & Cooking",
		Description: "Pure groundnut oil for cooking and frying",
		InStock:     true,
		Unit:        "per bottle (1 liter)",
		Rating:      4.4,
		ReviewCount: 187,
		Tags:        []string{"pure", "frying", "cooking"},
	},
	{
		ID:          "24",
		Name:        "Salt",
		Price:       200,
		Image:       "/api/placeholder/300/200",
		Category:    "Oil & Cooking",
		Description: "Pure table salt for cooking",
		InStock:     true,
		Unit:        "per pack",
		Rating:      4.2,
		ReviewCount: 298,
		Tags:        []string{"pure", "essential", "cooking"},
	},
}
