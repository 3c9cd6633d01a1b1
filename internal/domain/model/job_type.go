package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequiredInput names an input a job type's formula needs.
type RequiredInput struct {
	Name string `bson:"name" json:"name"`
	Unit string `bson:"unit" json:"unit"`
}

// JobType describes a kind of work and the formula that prices it.
type JobType struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Formula        string             `bson:"formula" json:"formula"`
	RequiredInputs []RequiredInput    `bson:"requiredInputs" json:"requiredInputs"`
	Company        string             `bson:"company" json:"company"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Quantity is a named, unit-tagged number on a job sheet.
type Quantity struct {
	Name  string  `bson:"name" json:"name"`
	Value float64 `bson:"value" json:"value"`
	Unit  string  `bson:"unit" json:"unit"`
}

// JobSheet records the inputs a laborer captured for a job type and the computed outputs.
type JobSheet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	JobType   primitive.ObjectID `bson:"jobType" json:"jobType"`
	Inputs    []Quantity         `bson:"inputs" json:"inputs"`
	Outputs   []Quantity         `bson:"outputs" json:"outputs"`
	Company   string             `bson:"company" json:"company"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
