package catalog

import (
	"context"
	"fmt"
	"slices"

	"barrelman/pkg/domain"

	"github.com/google/uuid"
)

// NewPositionRangeRule blocks commits that leave a Latitude outside
// [-90, 90] or a Longitude outside [-180, 180].
func NewPositionRangeRule() domain.Rule {
	return positionRangeRule{}
}

type positionRangeRule struct{}

func (positionRangeRule) Name() string { return "position_range" }

var coordinateLimits = []struct {
	field string
	limit float64
}{
	{"Latitude", 90},
	{"Longitude", 180},
}

func (positionRangeRule) Evaluate(_ context.Context, _ domain.RuleView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, change := range changes {
		if change.Action == domain.ActionDelete || change.After == nil {
			continue
		}
		for _, c := range coordinateLimits {
			v, ok := domain.FieldValue[float64](change.After, c.field)
			if !ok || (v >= -c.limit && v <= c.limit) {
				continue
			}
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     "position_range",
				Severity: domain.SeverityBlock,
				Kind:     change.Kind,
				EntityID: change.ID,
				Message:  fmt.Sprintf("%s %s %s %.6f outside [-%g, %g]", change.Kind, change.ID, c.field, v, c.limit, c.limit),
			})
		}
	}
	return res, nil
}

// NewTrackReferenceRule warns when a track value points at a track that does
// not exist in the committed view.
func NewTrackReferenceRule() domain.Rule {
	return trackReferenceRule{}
}

type trackReferenceRule struct{}

func (trackReferenceRule) Name() string { return "track_reference" }

func (trackReferenceRule) Evaluate(_ context.Context, view domain.RuleView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, change := range changes {
		if change.Action == domain.ActionDelete || change.After == nil {
			continue
		}
		if change.Kind != domain.KindTrackValue && change.Kind != domain.KindTrackValue3D {
			continue
		}
		track, _ := domain.FieldValue[uuid.UUID](change.After, "Track")
		var msg string
		switch target, ok := view.Find(track); {
		case track == uuid.Nil:
			msg = fmt.Sprintf("track value %s has no track", change.ID)
		case !ok:
			msg = fmt.Sprintf("track value %s references missing track %s", change.ID, track)
		case !isTrack(target.Kind()):
			msg = fmt.Sprintf("track value %s references %s %s, not a track", change.ID, target.Kind(), track)
		default:
			continue
		}
		res.Violations = append(res.Violations, domain.Violation{
			Rule:     "track_reference",
			Severity: domain.SeverityWarn,
			Kind:     change.Kind,
			EntityID: change.ID,
			Message:  msg,
		})
	}
	return res, nil
}

func isTrack(kind domain.Kind) bool {
	return kind == domain.KindTrackBase || slices.Contains(Ancestors(kind), domain.KindTrackBase)
}
