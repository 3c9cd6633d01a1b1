package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is a work order assigned to a laborer.
type Job struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                  string             `bson:"name" json:"name"`
	JobType               []string           `bson:"jobType" json:"jobType"`
	Company               string             `bson:"company" json:"company"`
	User                  string             `bson:"user" json:"user"` // assignee user id (hex)
	IsActive              bool               `bson:"isActive" json:"isActive"`
	IsComplete            bool               `bson:"isComplete" json:"isComplete"`
	IsContractorSignature bool               `bson:"isContractorSignature" json:"isContractorSignature"`
	IsEngineerSignature   bool               `bson:"isEngineerSignature" json:"isEngineerSignature"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AssignedTo reports whether the job belongs to the given user.
func (j *Job) AssignedTo(userID primitive.ObjectID) bool {
	return j.User == userID.Hex()
}

// JobUpdate carries the optional fields of a job patch.
type JobUpdate struct {
	Name                  *string
	IsActive              *bool
	IsComplete            *bool
	IsContractorSignature *bool
	IsEngineerSignature   *bool
}

// Empty reports whether the update changes nothing.
func (u JobUpdate) Empty() bool {
	return u.Name == nil && u.IsActive == nil && u.IsComplete == nil &&
		u.IsContractorSignature == nil && u.IsEngineerSignature == nil
}
