package models

// Freelancer is one public freelancer profile as shown in the browse
// listing and on the detail page. Only ID, Name, Title, Rating, Reviews,
// Price and Skills participate in filtering and sorting; everything else
// is display payload carried through the pipeline untouched.
type Freelancer struct {
	ID             int      `json:"id" bson:"_id"`
	Name           string   `json:"name" bson:"name"`
	Title          string   `json:"title" bson:"title"`
	Rating         float64  `json:"rating" bson:"rating"`
	Reviews        int      `json:"reviews" bson:"reviews"`
	CompletionRate int      `json:"completionRate" bson:"completionRate"`
	ResponseTime   string   `json:"responseTime" bson:"responseTime"`
	LastActive     string   `json:"lastActive" bson:"lastActive"`
	MemberSince    string   `json:"memberSince" bson:"memberSince"`
	Description    string   `json:"description" bson:"description"`
	Image          string   `json:"image" bson:"image"`
	Skills         []string `json:"skills" bson:"skills"`
	Price          float64  `json:"price" bson:"price"`
	Languages      []string `json:"languages" bson:"languages"`

	Education      []Education     `json:"education,omitempty" bson:"education,omitempty"`
	Certifications []string        `json:"certifications,omitempty" bson:"certifications,omitempty"`
	Portfolio      []PortfolioItem `json:"portfolio,omitempty" bson:"portfolio,omitempty"`
	ReviewsList    []Review        `json:"reviewsList,omitempty" bson:"reviewsList,omitempty"`
	Services       []ServiceOffer  `json:"services,omitempty" bson:"services,omitempty"`
}

type Education struct {
	Degree      string `json:"degree" bson:"degree"`
	Institution string `json:"institution" bson:"institution"`
	Year        string `json:"year" bson:"year"`
}

type PortfolioItem struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Image       string `json:"image" bson:"image"`
}

type Review struct {
	ID        int     `json:"id" bson:"id"`
	User      string  `json:"user" bson:"user"`
	Rating    float64 `json:"rating" bson:"rating"`
	Date      string  `json:"date" bson:"date"`
	Comment   string  `json:"comment" bson:"comment"`
	UserImage string  `json:"userImage,omitempty" bson:"userImage,omitempty"`
}

type ServiceOffer struct {
	ID           int     `json:"id" bson:"id"`
	Title        string  `json:"title" bson:"title"`
	Description  string  `json:"description" bson:"description"`
	Price        float64 `json:"price" bson:"price"`
	DeliveryTime string  `json:"deliveryTime" bson:"deliveryTime"`
}
