package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserListView_Transitions(t *testing.T) {
	v := NewUserListView()
	assert.True(t, v.Loading)

	v.Loaded([]User{{Email: "a@b.com"}})
	assert.False(t, v.Loading)
	assert.Empty(t, v.Err)
	assert.Len(t, v.Users, 1)

	// A failed refresh clears the list and shows the message instead.
	v.BeginLoad()
	assert.True(t, v.Loading)
	v.Failed("Failed to fetch users")
	assert.False(t, v.Loading)
	assert.Equal(t, "Failed to fetch users", v.Err)
	assert.Nil(t, v.Users)

	v.Loaded([]User{})
	assert.Empty(t, v.Err)
	assert.NotNil(t, v.Users)
}

func TestSubmitView_PreventsDoubleSubmission(t *testing.T) {
	var v SubmitView

	assert.True(t, v.Begin())
	assert.True(t, v.InFlight())
	assert.False(t, v.Begin(), "second Begin while in flight must be refused")

	v.Succeed(time.Now())
	assert.False(t, v.InFlight())
	assert.True(t, v.Begin())
}

func TestSubmitView_SuccessBannerExpires(t *testing.T) {
	var v SubmitView
	now := time.Now()

	v.Begin()
	v.Succeed(now)

	assert.True(t, v.SuccessVisible(now))
	assert.True(t, v.SuccessVisible(now.Add(SuccessBannerDuration-time.Millisecond)))
	assert.False(t, v.SuccessVisible(now.Add(SuccessBannerDuration)))
}

func TestSubmitView_ErrorSticksUntilNextAttempt(t *testing.T) {
	var v SubmitView

	v.Begin()
	v.Fail("User with this email already exists")
	assert.Equal(t, "User with this email already exists", v.Err())
	assert.False(t, v.SuccessVisible(time.Now()))

	// The next attempt clears the previous error.
	v.Begin()
	assert.Empty(t, v.Err())
}
