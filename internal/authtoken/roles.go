// Copyright (c) 2024 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package authtoken

// Role is the privilege level attached to a session.
type Role string

// Built-in roles. Roles are flat: Owner does not imply Admin and
// Admin never implies Owner.
const (
	RoleOwner Role = "Owner"
	RoleAdmin Role = "Admin"
)

// AllowedRoles lists every role a session may carry.
var AllowedRoles = []Role{
	RoleOwner,
	RoleAdmin,
}

// ParseRole converts s to a Role. The match is exact and case sensitive.
func ParseRole(
	s string,
) (Role, bool) {
	for _, r := range AllowedRoles {
		if string(r) == s {
			return r, true
		}
	}

	return "", false
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}
