package model

import "github.com/aerostudent/teamreg/pkg/response"

// CheckResponse is returned by the attendee check endpoint.
type CheckResponse struct {
	Message  string        `json:"message"`
	Code     response.Code `json:"code"`
	Status   *Status       `json:"status,omitempty"`
	Attendee *Attendee     `json:"attendee,omitempty"`
}
