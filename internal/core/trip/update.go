package trip

// UserAction classifies an outward request from a point presenter.
type UserAction string

const (
	UserActionUpdatePoint UserAction = "update_point"
	UserActionDeletePoint UserAction = "delete_point"
)

// UpdateType hints how broadly observers should re-render after a change.
type UpdateType string

const (
	// UpdateTypePatch touches a single point without affecting list order.
	UpdateTypePatch UpdateType = "patch"
	// UpdateTypeMinor may change list order or membership.
	UpdateTypeMinor UpdateType = "minor"
	// UpdateTypeMajor replaces the whole trip.
	UpdateTypeMajor UpdateType = "major"
)

// SubmitUpdateType picks the update type for a submitted edit: a changed due
// date can move the point in the list, anything else is a patch.
func SubmitUpdateType(current, candidate Point) UpdateType {
	if !IsDatesEqual(current.DueDate, candidate.DueDate) {
		return UpdateTypeMinor
	}
	return UpdateTypePatch
}
