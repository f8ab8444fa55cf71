package models

import "time"

// Selection is a student's provisional, unpaid choice of a class. The class
// fields are denormalised at selection time; class_id is an opaque reference
// with no enforced foreign key. Duplicate (email, class_id) pairs are allowed.
type Selection struct {
	ID             string    `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	ClassID        string    `db:"class_id" json:"classId"`
	ClassName      string    `db:"class_name" json:"className"`
	Image          string    `db:"image" json:"image,omitempty"`
	Price          float64   `db:"price" json:"price"`
	InstructorName string    `db:"instructor_name" json:"instructorName"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
