package catalog

import "ny11/wellness-app/internal/domain"

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

// DefaultSeed returns the built-in reference data the app boots with.
func DefaultSeed() Seed {
	return Seed{
		Users: []domain.User{
			{ID: "admin1", Name: "Admin", Email: "admin@ny11.com", Phone: "000000000", Role: domain.RoleAdmin, Avatar: "https://i.pravatar.cc/150?u=admin1"},
			{ID: "user1", Name: "John Doe", Email: "john@test.com", Phone: "123456789", Role: domain.RoleRegular, Age: intPtr(30), WeightKg: floatPtr(80), HeightCm: floatPtr(180), Avatar: "https://i.pravatar.cc/150?u=user1"},
			// Seed coaches need their paired user accounts.
			{ID: "coach1", Name: "Sarah Ahmed", Email: "sarah@ny11.com", Phone: "111111111", Role: domain.RoleCoach, Avatar: "https://picsum.photos/id/1027/200/200"},
			{ID: "coach2", Name: "Mike Thompson", Email: "mike@ny11.com", Phone: "222222222", Role: domain.RoleCoach, Avatar: "https://picsum.photos/id/1005/200/200"},
			{ID: "coach3", Name: "Fatima Ali", Email: "fatima@ny11.com", Phone: "333333333", Role: domain.RoleCoach, Avatar: "https://picsum.photos/id/1011/200/200"},
		},
		Coaches: []domain.Coach{
			{
				ID:              "coach1",
				Name:            "Sarah Ahmed",
				Specialty:       "Nutrition Specialist",
				Avatar:          "https://picsum.photos/id/1027/200/200",
				Bio:             "Sarah is a certified nutritionist with a passion for helping people discover the power of healthy eating. She believes in creating sustainable lifestyle changes, not restrictive diets.",
				ExperienceYears: 8,
				ClientsHelped:   500,
			},
			{
				ID:              "coach2",
				Name:            "Mike Thompson",
				Specialty:       "Fitness & Strength",
				Avatar:          "https://picsum.photos/id/1005/200/200",
				Bio:             "A former athlete, Mike specializes in strength training and functional fitness. He helps clients build strength, improve mobility, and achieve peak physical performance.",
				ExperienceYears: 10,
				ClientsHelped:   750,
			},
			{
				ID:              "coach3",
				Name:            "Fatima Ali",
				Specialty:       "Wellness Coach",
				Avatar:          "https://picsum.photos/id/1011/200/200",
				Bio:             "Fatima takes a holistic approach to health, focusing on mind-body connection. She helps clients with stress management, mindful eating, and overall well-being.",
				ExperienceYears: 6,
				ClientsHelped:   400,
			},
		},
		MarketItems: []domain.MarketItem{
			{ID: "m1", Name: "Grilled Chicken Salad", Description: "Fresh greens, grilled chicken, and a light vinaigrette.", Price: 12.50, Image: "https://picsum.photos/id/23/400/300", Category: domain.CategoryMeal},
			{ID: "m2", Name: "Quinoa Bowl", Description: "A hearty bowl of quinoa with roasted vegetables.", Price: 11.00, Image: "https://picsum.photos/id/25/400/300", Category: domain.CategoryMeal},
			{ID: "m3", Name: "Salmon with Asparagus", Description: "Pan-seared salmon served with fresh asparagus.", Price: 15.00, Image: "https://picsum.photos/id/31/400/300", Category: domain.CategoryMeal},
			{ID: "d1", Name: "Green Smoothie", Description: "A refreshing blend of spinach, kale, and fruit.", Price: 6.50, Image: "https://picsum.photos/id/40/400/300", Category: domain.CategoryDrink},
			{ID: "d2", Name: "Fresh Orange Juice", Description: "100% pure squeezed orange juice.", Price: 5.00, Image: "https://picsum.photos/id/42/400/300", Category: domain.CategoryDrink},
		},
		Banners: []Banner{
			{ID: "b1", URL: "https://picsum.photos/id/1060/1200/800"},
			{ID: "b2", URL: "https://picsum.photos/id/102/1200/800"},
			{ID: "b3", URL: "https://picsum.photos/id/103/1200/800"},
		},
		PlanTemplates: defaultPlanTemplates(),
		Translations:  defaultTranslations(),
	}
}

func defaultPlanTemplates() map[domain.Goal]domain.DailyPlan {
	return map[domain.Goal]domain.DailyPlan{
		domain.GoalWeightLoss: {
			Breakfast: []domain.Meal{{Name: "Oatmeal with Berries", Calories: 300, Image: "https://picsum.photos/id/1080/400/300", Description: "A warm bowl of oatmeal topped with fresh mixed berries."}},
			Lunch:     []domain.Meal{{Name: "Grilled Chicken Salad", Calories: 400, Image: "https://picsum.photos/id/23/400/300", Description: "Lean grilled chicken breast over a bed of fresh greens and vegetables."}},
			Dinner:    []domain.Meal{{Name: "Baked Salmon with Asparagus", Calories: 450, Image: "https://picsum.photos/id/31/400/300", Description: "Nutrient-rich baked salmon served with a side of steamed asparagus."}},
			Snacks:    []domain.Meal{{Name: "Greek Yogurt", Calories: 150, Image: "https://picsum.photos/id/41/400/300", Description: "A cup of plain Greek yogurt."}},
			Exercises: []domain.Exercise{{Name: "45 min Cardio", Duration: "45 min"}},
		},
		domain.GoalWeightGain: {
			Breakfast: []domain.Meal{{Name: "Scrambled Eggs with Avocado Toast", Calories: 500, Image: "https://picsum.photos/id/1078/400/300", Description: "Three scrambled eggs with two slices of whole-wheat toast topped with avocado."}},
			Lunch:     []domain.Meal{{Name: "Beef Burrito Bowl", Calories: 700, Image: "https://picsum.photos/id/1015/400/300", Description: "A hearty bowl with brown rice, black beans, beef, and cheese."}},
			Dinner:    []domain.Meal{{Name: "Pasta with Meat Sauce", Calories: 650, Image: "https://picsum.photos/id/1074/400/300", Description: "A generous portion of pasta with a rich, homemade meat sauce."}},
			Snacks:    []domain.Meal{{Name: "Handful of Almonds & a Banana", Calories: 300, Image: "https://picsum.photos/id/1016/400/300", Description: "A healthy, calorie-dense snack."}},
			Exercises: []domain.Exercise{{Name: "Full Body Strength Training", Duration: "60 min"}},
		},
		domain.GoalMuscleBuild: {
			Breakfast: []domain.Meal{{Name: "Protein Pancakes", Calories: 450, Image: "https://picsum.photos/id/1025/400/300", Description: "Fluffy pancakes made with protein powder, served with syrup."}},
			Lunch:     []domain.Meal{{Name: "Chicken Breast with Quinoa & Broccoli", Calories: 600, Image: "https://picsum.photos/id/1028/400/300", Description: "A classic muscle-building meal with lean protein and complex carbs."}},
			Dinner:    []domain.Meal{{Name: "Steak with Sweet Potato", Calories: 700, Image: "https://picsum.photos/id/1035/400/300", Description: "A juicy steak served with a baked sweet potato for energy."}},
			Snacks:    []domain.Meal{{Name: "Protein Shake", Calories: 250, Image: "https://picsum.photos/id/106/400/300", Description: "A quick and easy protein shake to fuel muscle recovery."}},
			Exercises: []domain.Exercise{{Name: "Heavy Lifting (Push Day)", Reps: "3-4 sets of 8-12"}},
		},
		domain.GoalFitness: {
			Breakfast: []domain.Meal{{Name: "Smoothie with Spinach and Fruit", Calories: 350, Image: "https://picsum.photos/id/40/400/300", Description: "A vibrant smoothie packed with vitamins and minerals."}},
			Lunch:     []domain.Meal{{Name: "Tuna Wrap", Calories: 450, Image: "https://picsum.photos/id/43/400/300", Description: "A whole-wheat wrap filled with tuna salad and fresh lettuce."}},
			Dinner:    []domain.Meal{{Name: "Turkey Meatballs with Zucchini Noodles", Calories: 500, Image: "https://picsum.photos/id/48/400/300", Description: "A light yet satisfying dinner to keep you energized."}},
			Snacks:    []domain.Meal{{Name: "Apple with Peanut Butter", Calories: 200, Image: "https://picsum.photos/id/51/400/300", Description: "A balanced snack with fiber and healthy fats."}},
			Exercises: []domain.Exercise{{Name: "High-Intensity Interval Training (HIIT)", Duration: "20 min"}},
		},
		domain.GoalMaintenance: {
			Breakfast: []domain.Meal{{Name: "Everything Bagel with Cream Cheese", Calories: 400, Image: "https://picsum.photos/id/55/400/300", Description: "A classic breakfast to start your day."}},
			Lunch:     []domain.Meal{{Name: "Leftover Turkey Meatballs", Calories: 500, Image: "https://picsum.photos/id/48/400/300", Description: "Easy and delicious leftovers from last night."}},
			Dinner:    []domain.Meal{{Name: "Homemade Pizza", Calories: 600, Image: "https://picsum.photos/id/58/400/300", Description: "A balanced homemade pizza with your favorite toppings."}},
			Snacks:    []domain.Meal{{Name: "Popcorn", Calories: 150, Image: "https://picsum.photos/id/60/400/300", Description: "A light snack for when you feel peckish."}},
			Exercises: []domain.Exercise{{Name: "30 min Jogging", Duration: "30 min"}},
		},
	}
}

// Translation keys the core raises notices with.
const (
	KeyPlanUpdatedTitle         = "planUpdatedTitle"
	KeyPlanUpdatedBody          = "planUpdatedBody"
	KeyNewMessageFrom           = "newMessageFrom"
	KeyLoginToContinue          = "loginToContinue"
	KeyAppointmentReminderTitle = "appointmentReminderTitle"
	KeyAppointmentReminderBody  = "appointmentReminderBody"
)

// RequiredKeys must resolve in every table for notices to read correctly.
var RequiredKeys = []string{
	KeyPlanUpdatedTitle,
	KeyPlanUpdatedBody,
	KeyNewMessageFrom,
	KeyLoginToContinue,
	KeyAppointmentReminderTitle,
	KeyAppointmentReminderBody,
}

func defaultTranslations() map[domain.Language]map[string]string {
	return map[domain.Language]map[string]string{
		domain.LanguageEN: {
			"appName":                   "ny11",
			"welcome":                   "Welcome to ny11",
			"breakfast":                 "Breakfast",
			"lunch":                     "Lunch",
			"dinner":                    "Dinner",
			"snacks":                    "Snacks",
			"exercises":                 "Exercises",
			"generatingPlan":            "Generating Your Plan...",
			"serviceQuote":              "Service Quote",
			"accept":                    "Accept",
			"decline":                   "Decline",
			"cartIsEmpty":               "Your cart is empty.",
			"checkout":                  "Checkout",
			"logout":                    "Logout",
			KeyLoginToContinue:          "Please log in to continue.",
			KeyNewMessageFrom:           "New message from {name}",
			KeyPlanUpdatedTitle:         "Plan Updated!",
			KeyPlanUpdatedBody:          "Your new plan is available on your dashboard.",
			KeyAppointmentReminderTitle: "Upcoming Appointment",
			KeyAppointmentReminderBody:  "You have a meeting with your coach in 15 minutes.",
		},
		domain.LanguageAR: {
			"appName":                   "ny11",
			"welcome":                   "أهلاً بك في ny11",
			"breakfast":                 "الفطور",
			"lunch":                     "الغداء",
			"dinner":                    "العشاء",
			"snacks":                    "وجبات خفيفة",
			"exercises":                 "التمارين",
			"generatingPlan":            "جاري إنشاء خطتك...",
			"serviceQuote":              "عرض سعر الخدمة",
			"accept":                    "قبول",
			"decline":                   "رفض",
			"cartIsEmpty":               "سلة التسوق فارغة.",
			"checkout":                  "الدفع",
			"logout":                    "تسجيل الخروج",
			KeyLoginToContinue:          "يرجى تسجيل الدخول للمتابعة.",
			KeyNewMessageFrom:           "رسالة جديدة من {name}",
			KeyPlanUpdatedTitle:         "تم تحديث الخطة!",
			KeyPlanUpdatedBody:          "خطتك الجديدة متاحة في لوحة التحكم.",
			KeyAppointmentReminderTitle: "موعد قادم",
			KeyAppointmentReminderBody:  "لديك اجتماع مع مدربك خلال 15 دقيقة.",
		},
	}
}
