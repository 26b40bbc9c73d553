package models

import "time"

// ContactMessage is an enquiry submitted through the landing page form.
type ContactMessage struct {
	ID        int64     `json:"id" form:"-"`
	FirstName string    `json:"first_name" form:"first_name"`
	LastName  string    `json:"last_name" form:"last_name"`
	Email     string    `json:"email" form:"email"`
	Company   string    `json:"company" form:"company"`
	Message   string    `json:"message" form:"message"`
	CreatedAt time.Time `json:"created_at" form:"-"`
}
