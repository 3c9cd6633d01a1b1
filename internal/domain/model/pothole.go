package model

import (
	"time"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/measure"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultWeather is recorded when the crew does not report conditions.
const DefaultWeather = "Sunny"

// Dimensions of a pothole in meters.
type Dimensions struct {
	L float64 `bson:"l" json:"l"`
	W float64 `bson:"w" json:"w"`
	D float64 `bson:"d" json:"d"`
}

// Pothole is a pothole repair sheet attached to a job.
// Area, Volume and MaterialsInKg are always derived from Dimensions and NumberOfBags.
type Pothole struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Job           primitive.ObjectID `bson:"job" json:"job"`
	Dimensions    Dimensions         `bson:"dimensions" json:"dimensions"`
	NumberOfBags  int                `bson:"numberOfBags" json:"numberOfBags"`
	Area          float64            `bson:"area" json:"area"`
	Volume        float64            `bson:"volume" json:"volume"`
	MaterialsInKg float64            `bson:"materialsInKg" json:"materialsInKg"`
	Weather       string             `bson:"weather" json:"weather"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Measurement returns the raw site values of the sheet.
func (p *Pothole) Measurement() measure.Measurement {
	return measure.Measurement{
		Length:   p.Dimensions.L,
		Width:    p.Dimensions.W,
		Depth:    p.Dimensions.D,
		BagCount: p.NumberOfBags,
	}
}

// ApplyMetrics overwrites the derived fields.
func (p *Pothole) ApplyMetrics(m measure.DerivedMetrics) {
	p.Area = m.Area
	p.Volume = m.Volume
	p.MaterialsInKg = m.MaterialMass
}
