package client

import "time"

// SuccessBannerDuration is how long a successful submission stays visible.
const SuccessBannerDuration = 3 * time.Second

// UserListView tracks the three-valued display state of the user list:
// loading, error, or loaded. A failed fetch clears the list and shows the
// error message in its place.
type UserListView struct {
	Loading bool
	Err     string
	Users   []User
}

// NewUserListView starts in the loading state.
func NewUserListView() *UserListView {
	return &UserListView{Loading: true}
}

// BeginLoad marks a fetch in progress.
func (v *UserListView) BeginLoad() {
	v.Loading = true
}

// Loaded replaces the list with a successful fetch result.
func (v *UserListView) Loaded(users []User) {
	v.Loading = false
	v.Err = ""
	v.Users = users
}

// Failed records a fetch failure, discarding any previously shown list.
func (v *UserListView) Failed(message string) {
	v.Loading = false
	v.Err = message
	v.Users = nil
}

// SubmitView tracks the create-user form lifecycle: an in-flight guard
// against double submission, an error that sticks until the next attempt,
// and a success banner that expires after SuccessBannerDuration.
type SubmitView struct {
	inFlight     bool
	err          string
	successUntil time.Time
}

// Begin marks a submission in flight. It returns false if one is already
// running, in which case the caller must not submit.
func (v *SubmitView) Begin() bool {
	if v.inFlight {
		return false
	}
	v.inFlight = true
	v.err = ""
	v.successUntil = time.Time{}
	return true
}

// Succeed records a successful submission at the given time.
func (v *SubmitView) Succeed(now time.Time) {
	v.inFlight = false
	v.err = ""
	v.successUntil = now.Add(SuccessBannerDuration)
}

// Fail records a failed submission.
func (v *SubmitView) Fail(message string) {
	v.inFlight = false
	v.err = message
}

// InFlight reports whether a submission is currently running.
func (v *SubmitView) InFlight() bool {
	return v.inFlight
}

// Err returns the last submission error, or "" if none.
func (v *SubmitView) Err() string {
	return v.err
}

// SuccessVisible reports whether the success banner should show at now.
func (v *SubmitView) SuccessVisible(now time.Time) bool {
	return now.Before(v.successUntil)
}
