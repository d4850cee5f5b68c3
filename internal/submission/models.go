package submission

import "go.mongodb.org/mongo-driver/bson/primitive"

// Submission is the document created from a validated contact form post.
// Values are stored trimmed; message may be empty. The ID is assigned by the
// datastore and never surfaced to the form user.
type Submission struct {
	ID      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Email   string             `json:"email" bson:"email"`
	Message string             `json:"message" bson:"message"`
}
