package models

// DurationUnit is the unit a project duration is expressed in.
type DurationUnit string

const (
	UnitHours DurationUnit = "hours"
	UnitDays  DurationUnit = "days"
)

// Duration is a project duration with an explicit unit.
type Duration struct {
	Value float64      `bson:"value" json:"value"` // must be > 0
	Unit  DurationUnit `bson:"unit" json:"unit"`
}

// Hours returns the duration expressed in hours, regardless of unit.
func (d Duration) Hours() float64 {
	if d.Unit == UnitDays {
		return d.Value * 24
	}
	return d.Value
}

// Project is a service-delivery project staffed by one or more team members.
type Project struct {
	ID                   string       `bson:"id" json:"id"`
	Name                 string       `bson:"name" json:"name"`
	ProfessionalID       string       `bson:"professionalId" json:"professionalId"` // company owner
	ExecutionDuration    *Duration    `bson:"executionDuration,omitempty" json:"executionDuration,omitempty"`
	BufferDuration       *Duration    `bson:"bufferDuration,omitempty" json:"bufferDuration,omitempty"`
	PreparationDuration  *Duration    `bson:"preparationDuration,omitempty" json:"preparationDuration,omitempty"`
	TeamMemberIDs        []string     `bson:"teamMemberIds" json:"teamMemberIds"`
	MinResources         int          `bson:"minResources" json:"minResources"`                 // >= 1, <= len(TeamMemberIDs)
	MinOverlapPercentage int          `bson:"minOverlapPercentage" json:"minOverlapPercentage"` // 10..100, 0 = use call-site default
	SubProjects          []SubProject `bson:"subProjects,omitempty" json:"subProjects,omitempty"`
}

// SubProject can override the parent project's durations and thresholds.
// Nil fields inherit from the project.
type SubProject struct {
	Name                 string    `bson:"name" json:"name"`
	ExecutionDuration    *Duration `bson:"executionDuration,omitempty" json:"executionDuration,omitempty"`
	BufferDuration       *Duration `bson:"bufferDuration,omitempty" json:"bufferDuration,omitempty"`
	PreparationDuration  *Duration `bson:"preparationDuration,omitempty" json:"preparationDuration,omitempty"`
	MinResources         int       `bson:"minResources,omitempty" json:"minResources,omitempty"`
	MinOverlapPercentage int       `bson:"minOverlapPercentage,omitempty" json:"minOverlapPercentage,omitempty"`
}

// EffectiveDurations is the fully resolved set of durations and thresholds
// for one scheduling query, built once with explicit subproject-over-project
// precedence instead of re-deriving at each use site.
type EffectiveDurations struct {
	Execution            *Duration
	Buffer               *Duration
	Preparation          *Duration
	MinResources         int
	MinOverlapPercentage int
}
