// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model. Field rules are declared with
// gin binding tags; cross-field and format checks live in the Validate methods.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func validateObjectID(field, value string) error {
	if !primitive.IsValidObjectID(value) {
		return &ValidationError{Field: field, Message: "must be a valid id"}
	}
	return nil
}

// CreateJobRequest represents the JSON request body for creating a job.
//
// @Description Request to create a work order and assign it to a laborer
type CreateJobRequest struct {
	Name       string   `json:"name" binding:"required,max=200" example:"N1 Resurfacing Km 12"`
	JobType    []string `json:"jobType" binding:"required,min=1,dive,required" example:"POTHOLE"`
	Company    string   `json:"company" binding:"required,company" example:"Bombela"`
	User       string   `json:"user" binding:"required" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	IsActive   *bool    `json:"isActive" binding:"required" example:"true"`
	IsComplete bool     `json:"isComplete" example:"false"`
} // @name CreateJobRequest

// Validate checks the assignee id format.
func (r *CreateJobRequest) Validate() error {
	return validateObjectID("user", r.User)
}

// UpdateJobRequest represents the JSON request body for patching a job.
//
// @Description Partial job update; omitted fields are left unchanged
type UpdateJobRequest struct {
	Name                  *string `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	IsActive              *bool   `json:"isActive,omitempty"`
	IsComplete            *bool   `json:"isComplete,omitempty"`
	IsContractorSignature *bool   `json:"isContractorSignature,omitempty"`
	IsEngineerSignature   *bool   `json:"isEngineerSignature,omitempty"`
} // @name UpdateJobRequest

// Validate rejects an empty patch.
func (r *UpdateJobRequest) Validate() error {
	if r.Name == nil && r.IsActive == nil && r.IsComplete == nil &&
		r.IsContractorSignature == nil && r.IsEngineerSignature == nil {
		return &ValidationError{Field: "body", Message: "at least one field must be provided"}
	}
	return nil
}

// DimensionsRequest carries pothole dimensions in meters.
type DimensionsRequest struct {
	L float64 `json:"l" example:"2"`
	W float64 `json:"w" example:"3"`
	D float64 `json:"d" example:"0.5"`
} // @name DimensionsRequest

// CreatePotholeRequest represents the JSON request body for recording a pothole repair.
// Derived fields (area, volume, materialsInKg) are not accepted; the server computes them.
//
// @Description Raw pothole measurements for a job
// @Example {"job": "65a1f0c2e4b0a1b2c3d4e5f6", "dimensions": {"l": 2, "w": 3, "d": 0.5}, "numberOfBags": 4}
type CreatePotholeRequest struct {
	Job          string            `json:"job" binding:"required" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	Dimensions   DimensionsRequest `json:"dimensions"`
	NumberOfBags int               `json:"numberOfBags" example:"4"`
	Weather      string            `json:"weather,omitempty" binding:"omitempty,max=50" example:"Sunny"`
} // @name CreatePotholeRequest

// Validate checks the job id format.
func (r *CreatePotholeRequest) Validate() error {
	return validateObjectID("job", r.Job)
}

// DimensionsPatch carries optional dimension updates.
type DimensionsPatch struct {
	L *float64 `json:"l,omitempty"`
	W *float64 `json:"w,omitempty"`
	D *float64 `json:"d,omitempty"`
} // @name DimensionsPatch

// UpdatePotholeRequest represents the JSON request body for patching a pothole sheet.
//
// @Description Partial pothole update; derived fields are recomputed
type UpdatePotholeRequest struct {
	Dimensions   *DimensionsPatch `json:"dimensions,omitempty"`
	NumberOfBags *int             `json:"numberOfBags,omitempty"`
	Weather      *string          `json:"weather,omitempty" binding:"omitempty,min=1,max=50"`
} // @name UpdatePotholeRequest

// Validate rejects an empty patch.
func (r *UpdatePotholeRequest) Validate() error {
	if r.Dimensions == nil && r.NumberOfBags == nil && r.Weather == nil {
		return &ValidationError{Field: "body", Message: "at least one field must be provided"}
	}
	return nil
}

// CreateUserRequest represents the JSON request body for an admin creating a user.
//
// @Description Request to create a user account
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email" example:"crew1@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	Role     string `json:"role,omitempty" binding:"omitempty,oneof=admin laborer" example:"laborer"`
	Company  string `json:"company" binding:"required,company" example:"Bombela"`
} // @name CreateUserRequest

// UpdateUserRequest represents the JSON request body for changing a user's email.
//
// @Description Request to change a user's email
type UpdateUserRequest struct {
	Email string `json:"email" binding:"required,email" example:"crew1@example.com"`
} // @name UpdateUserRequest

// RequiredInputRequest names an input a job type needs.
type RequiredInputRequest struct {
	Name string `json:"name" binding:"required" example:"area"`
	Unit string `json:"unit" binding:"required" example:"m2"`
} // @name RequiredInputRequest

// CreateJobTypeRequest represents the JSON request body for defining a job type.
//
// @Description Request to define a job type and its pricing formula
type CreateJobTypeRequest struct {
	Name           string                 `json:"name" binding:"required,max=100" example:"Road marking"`
	Formula        string                 `json:"formula" binding:"required" example:"PAINT"`
	RequiredInputs []RequiredInputRequest `json:"requiredInputs" binding:"dive"`
	Company        string                 `json:"company" binding:"required,company" example:"Bombela"`
} // @name CreateJobTypeRequest

// QuantityRequest is one named value on a job sheet.
type QuantityRequest struct {
	Name  string  `json:"name" binding:"required" example:"area"`
	Value float64 `json:"value" example:"12.5"`
	Unit  string  `json:"unit" binding:"required" example:"m2"`
} // @name QuantityRequest

// CreateJobSheetRequest represents the JSON request body for submitting a job sheet.
//
// @Description Inputs captured for a job type; outputs are computed by the server
type CreateJobSheetRequest struct {
	JobType string            `json:"jobType" binding:"required" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	Inputs  []QuantityRequest `json:"inputs" binding:"required,min=1,dive"`
} // @name CreateJobSheetRequest

// Validate checks the job type id format and rejects duplicate input names.
func (r *CreateJobSheetRequest) Validate() error {
	if err := validateObjectID("jobType", r.JobType); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(r.Inputs))
	for _, in := range r.Inputs {
		if _, dup := seen[in.Name]; dup {
			return &ValidationError{Field: "inputs", Message: "duplicate input " + in.Name}
		}
		seen[in.Name] = struct{}{}
	}
	return nil
}
