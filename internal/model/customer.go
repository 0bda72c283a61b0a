package model

// Customer is customer model entity
type Customer struct {
	ID        string  `json:"id" bson:"_id,omitempty" msgpack:"id"`
	FirstName string  `json:"firstName" bson:"firstName" msgpack:"firstName"`
	LastName  string  `json:"lastName" bson:"lastName" msgpack:"lastName"`
	Email     *string `json:"email" bson:"email,omitempty" msgpack:"email"`
}
