// Package fixtures holds the sample users and reviews used to populate a
// fresh Locker Room Talk project.
package fixtures

import "github.com/newbeeR2020/lockerroom_seed/internal/docstore"

// Gender of the person a review is about.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

// Category of the date being reviewed.
type Category string

const (
	CategoryCoffee   Category = "coffee"
	CategoryDinner   Category = "dinner"
	CategoryActivity Category = "activity"
)

// DateDuration is how long the date lasted.
type DateDuration string

const (
	DurationTwoToThreeHours DateDuration = "twoToThreeHours"
	DurationHalfDay         DateDuration = "halfDay"
)

// RelationshipType is what the reviewer was looking for.
type RelationshipType string

const (
	RelationshipCasual  RelationshipType = "casual"
	RelationshipSerious RelationshipType = "serious"
)

type Location struct {
	City    string `firestore:"city" json:"city"`
	State   string `firestore:"state" json:"state"`
	Country string `firestore:"country" json:"country"`
}

func (l Location) document() docstore.Document {
	return docstore.Document{
		"city":    l.City,
		"state":   l.State,
		"country": l.Country,
	}
}

// Stats are engagement counters on a review.
type Stats struct {
	Views      int `firestore:"views" json:"views"`
	Likes      int `firestore:"likes" json:"likes"`
	Comments   int `firestore:"comments" json:"comments"`
	Shares     int `firestore:"shares" json:"shares"`
	Helpful    int `firestore:"helpful" json:"helpful"`
	NotHelpful int `firestore:"notHelpful" json:"notHelpful"`
}

func (s Stats) document() docstore.Document {
	return docstore.Document{
		"views":      s.Views,
		"likes":      s.Likes,
		"comments":   s.Comments,
		"shares":     s.Shares,
		"helpful":    s.Helpful,
		"notHelpful": s.NotHelpful,
	}
}

// User is stored under its UID, so writing it twice overwrites.
//
// The json tags decode a stored document back into a User. Firestore's
// DataTo skips CreatedAt and UpdatedAt; read those into time.Time fields.
type User struct {
	UID         string             `firestore:"uid" json:"uid"`
	Email       string             `firestore:"email" json:"email"`
	DisplayName string             `firestore:"displayName" json:"displayName"`
	Username    string             `firestore:"username" json:"username"`
	Bio         string             `firestore:"bio" json:"bio"`
	Location    Location           `firestore:"location" json:"location"`
	CreatedAt   docstore.Timestamp `firestore:"-" json:"createdAt"`
	UpdatedAt   docstore.Timestamp `firestore:"-" json:"updatedAt"`
}

// Document returns the fields written to the users collection.
func (u User) Document() docstore.Document {
	return docstore.Document{
		"uid":         u.UID,
		"email":       u.Email,
		"displayName": u.DisplayName,
		"username":    u.Username,
		"bio":         u.Bio,
		"location":    u.Location.document(),
		"createdAt":   u.CreatedAt,
		"updatedAt":   u.UpdatedAt,
	}
}

// Review has no key of its own; the store assigns one on insert, so
// writing the same review twice creates two documents. Timestamps
// decode from JSON but not through Firestore's DataTo, as for User.
type Review struct {
	AuthorID         string             `firestore:"authorId" json:"authorId"`
	SubjectName      string             `firestore:"subjectName" json:"subjectName"`
	SubjectAge       int                `firestore:"subjectAge" json:"subjectAge"`
	SubjectGender    Gender             `firestore:"subjectGender" json:"subjectGender"`
	Category         Category           `firestore:"category" json:"category"`
	DateDuration     DateDuration       `firestore:"dateDuration" json:"dateDuration"`
	DateYear         int                `firestore:"dateYear" json:"dateYear"`
	RelationshipType RelationshipType   `firestore:"relationshipType" json:"relationshipType"`
	Title            string             `firestore:"title" json:"title"`
	Content          string             `firestore:"content" json:"content"`
	Rating           int                `firestore:"rating" json:"rating"`
	WouldRecommend   bool               `firestore:"wouldRecommend" json:"wouldRecommend"`
	Location         Location           `firestore:"location" json:"location"`
	Venue            string             `firestore:"venue" json:"venue"`
	Tags             []string           `firestore:"tags" json:"tags"`
	ImageURLs        []string           `firestore:"imageUrls" json:"imageUrls"`
	IsAnonymous      bool               `firestore:"isAnonymous" json:"isAnonymous"`
	Stats            Stats              `firestore:"stats" json:"stats"`
	CreatedAt        docstore.Timestamp `firestore:"-" json:"createdAt"`
	UpdatedAt        docstore.Timestamp `firestore:"-" json:"updatedAt"`
}

// Document returns the fields written to the reviews collection.
func (r Review) Document() docstore.Document {
	return docstore.Document{
		"authorId":         r.AuthorID,
		"subjectName":      r.SubjectName,
		"subjectAge":       r.SubjectAge,
		"subjectGender":    string(r.SubjectGender),
		"category":         string(r.Category),
		"dateDuration":     string(r.DateDuration),
		"dateYear":         r.DateYear,
		"relationshipType": string(r.RelationshipType),
		"title":            r.Title,
		"content":          r.Content,
		"rating":           r.Rating,
		"wouldRecommend":   r.WouldRecommend,
		"location":         r.Location.document(),
		"venue":            r.Venue,
		"tags":             nonNil(r.Tags),
		"imageUrls":        nonNil(r.ImageURLs),
		"isAnonymous":      r.IsAnonymous,
		"stats":            r.Stats.document(),
		"createdAt":        r.CreatedAt,
		"updatedAt":        r.UpdatedAt,
	}
}

// empty arrays, never null
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string{}, s...)
}
