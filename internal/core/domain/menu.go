package domain

// MenuItem is a single dish on the restaurant menu.
type MenuItem struct {
	ID       string  `json:"id" bson:"_id,omitempty"`
	Name     string  `json:"name" bson:"name"`
	Category string  `json:"category" bson:"category"`
	Price    float64 `json:"price" bson:"price"`
	Recipe   string  `json:"recipe,omitempty" bson:"recipe,omitempty"`
	Image    string  `json:"image,omitempty" bson:"image,omitempty"`
}
