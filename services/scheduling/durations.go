package scheduling

import (
	"fmt"

	"planora/models"
)

const (
	minOverlapFloor   = 10
	minOverlapCeiling = 100
)

// ResolveEffectiveDurations builds the resolved duration/threshold set for
// one query. A subProjectIndex of -1 selects the project level; a non-nil
// subproject field overrides the project's. defaultOverlapPct is the
// call-site default used when neither level declares an overlap percentage.
func ResolveEffectiveDurations(project *models.Project, subProjectIndex int, defaultOverlapPct int) (models.EffectiveDurations, error) {
	eff := models.EffectiveDurations{
		Execution:            project.ExecutionDuration,
		Buffer:               project.BufferDuration,
		Preparation:          project.PreparationDuration,
		MinResources:         project.MinResources,
		MinOverlapPercentage: project.MinOverlapPercentage,
	}

	if subProjectIndex >= 0 {
		if subProjectIndex >= len(project.SubProjects) {
			return eff, fmt.Errorf("subproject index %d out of range (%d subprojects)", subProjectIndex, len(project.SubProjects))
		}
		sub := project.SubProjects[subProjectIndex]
		if sub.ExecutionDuration != nil {
			eff.Execution = sub.ExecutionDuration
		}
		if sub.BufferDuration != nil {
			eff.Buffer = sub.BufferDuration
		}
		if sub.PreparationDuration != nil {
			eff.Preparation = sub.PreparationDuration
		}
		if sub.MinResources > 0 {
			eff.MinResources = sub.MinResources
		}
		if sub.MinOverlapPercentage > 0 {
			eff.MinOverlapPercentage = sub.MinOverlapPercentage
		}
	}

	if eff.Execution != nil && eff.Execution.Value <= 0 {
		eff.Execution = nil
	}
	if eff.MinResources < 1 {
		eff.MinResources = 1
	}
	if total := len(project.TeamMemberIDs); total > 0 && eff.MinResources > total {
		eff.MinResources = total
	}
	if eff.MinOverlapPercentage == 0 {
		eff.MinOverlapPercentage = defaultOverlapPct
	}
	if eff.MinOverlapPercentage < minOverlapFloor {
		eff.MinOverlapPercentage = minOverlapFloor
	}
	if eff.MinOverlapPercentage > minOverlapCeiling {
		eff.MinOverlapPercentage = minOverlapCeiling
	}
	return eff, nil
}
