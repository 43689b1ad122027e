package fixtures

import "github.com/newbeeR2020/lockerroom_seed/internal/docstore"

// Users returns the sample users in write order.
func Users() []User {
	return []User{
		{
			UID:         "test_user_1",
			Email:       "john@example.com",
			DisplayName: "John Doe",
			Username:    "johndoe",
			Bio:         "Love coffee dates and hiking!",
			Location:    Location{City: "New York", State: "NY", Country: "USA"},
			CreatedAt:   docstore.ServerTimestamp(),
			UpdatedAt:   docstore.ServerTimestamp(),
		},
		{
			UID:         "test_user_2",
			Email:       "jane@example.com",
			DisplayName: "Jane Smith",
			Username:    "janesmith",
			Bio:         "Foodie and adventure seeker",
			Location:    Location{City: "Los Angeles", State: "CA", Country: "USA"},
			CreatedAt:   docstore.ServerTimestamp(),
			UpdatedAt:   docstore.ServerTimestamp(),
		},
	}
}

// Reviews returns the sample reviews in write order. Every AuthorID
// refers to a UID from Users.
func Reviews() []Review {
	return []Review{
		{
			AuthorID:         "test_user_1",
			SubjectName:      "Emma Wilson",
			SubjectAge:       28,
			SubjectGender:    GenderFemale,
			Category:         CategoryCoffee,
			DateDuration:     DurationTwoToThreeHours,
			DateYear:         2024,
			RelationshipType: RelationshipCasual,
			Title:            "Amazing Coffee Date at Central Perk",
			Content:          "Had a wonderful time! Great conversation, amazing coffee, and the atmosphere was perfect. Would definitely recommend this spot for a first date.",
			Rating:           5,
			WouldRecommend:   true,
			Location:         Location{City: "New York", State: "NY", Country: "USA"},
			Venue:            "Central Perk Cafe",
			Tags:             []string{"coffee", "firstdate", "romantic"},
			ImageURLs:        []string{},
			IsAnonymous:      false,
			Stats:            Stats{Views: 142, Likes: 23, Comments: 5, Shares: 2, Helpful: 18, NotHelpful: 1},
			CreatedAt:        docstore.ServerTimestamp(),
			UpdatedAt:        docstore.ServerTimestamp(),
		},
		{
			AuthorID:         "test_user_2",
			SubjectName:      "Michael Chen",
			SubjectAge:       32,
			SubjectGender:    GenderMale,
			Category:         CategoryDinner,
			DateDuration:     DurationTwoToThreeHours,
			DateYear:         2024,
			RelationshipType: RelationshipSerious,
			Title:            "Romantic Dinner at The Ivy",
			Content:          "Absolutely perfect evening! The restaurant had amazing ambiance, food was incredible, and my date was charming. Highly recommend for special occasions.",
			Rating:           5,
			WouldRecommend:   true,
			Location:         Location{City: "Los Angeles", State: "CA", Country: "USA"},
			Venue:            "The Ivy Restaurant",
			Tags:             []string{"dinner", "romantic", "upscale"},
			ImageURLs:        []string{},
			IsAnonymous:      false,
			Stats:            Stats{Views: 287, Likes: 45, Comments: 12, Shares: 8, Helpful: 38, NotHelpful: 2},
			CreatedAt:        docstore.ServerTimestamp(),
			UpdatedAt:        docstore.ServerTimestamp(),
		},
		{
			AuthorID:         "test_user_1",
			SubjectName:      "Anonymous",
			SubjectAge:       26,
			SubjectGender:    GenderOther,
			Category:         CategoryActivity,
			DateDuration:     DurationHalfDay,
			DateYear:         2024,
			RelationshipType: RelationshipCasual,
			Title:            "Fun Beach Day Adventure",
			Content:          "Spent the day at Santa Monica beach. Great weather, fun activities, and lots of laughs. The sunset was absolutely beautiful!",
			Rating:           4,
			WouldRecommend:   true,
			Location:         Location{City: "Santa Monica", State: "CA", Country: "USA"},
			Venue:            "Santa Monica Beach",
			Tags:             []string{"beach", "outdoor", "adventure"},
			ImageURLs:        []string{},
			IsAnonymous:      true,
			Stats:            Stats{Views: 98, Likes: 15, Comments: 3, Shares: 1, Helpful: 12, NotHelpful: 0},
			CreatedAt:        docstore.ServerTimestamp(),
			UpdatedAt:        docstore.ServerTimestamp(),
		},
	}
}
