package camdram

import (
	"github.com/cccteam/camdram/internal/util"
)

var _ ResourceOwner = &User{}

// User is the resource owner returned by the Camdram user details endpoint
type User struct {
	response map[string]any
}

// NewUser returns a User wrapping the parsed user details response
func NewUser(response map[string]any) *User {
	if response == nil {
		response = map[string]any{}
	}

	return &User{response: response}
}

// ID returns the user's Camdram id, or nil if the response did not include one
func (u *User) ID() any {
	return u.ValueByKey("id")
}

// Name returns the user's name, or nil if the response did not include one
func (u *User) Name() any {
	return u.ValueByKey("name")
}

// ValueByKey returns the value at key, which may use dot notation to reach into nested objects and arrays.
// nil is returned when no value is found.
func (u *User) ValueByKey(key string) any {
	v, _ := util.ValueByKey(u.response, key)

	return v
}

// ToRaw returns all of the user details available
func (u *User) ToRaw() map[string]any {
	return u.response
}
