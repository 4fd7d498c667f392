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

package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// AllTargets is the force-logout target that selects every session.
const AllTargets = "all"

// identityRe matches console usernames.
var identityRe = regexp.MustCompile(`^[a-zA-Z0-9._@-]{1,64}$`)

// IsIdentity reports whether s is a well-formed console identity.
func IsIdentity(
	s string,
) bool {
	return identityRe.MatchString(s)
}

func validIdentity(
	fl validator.FieldLevel,
) bool {
	return IsIdentity(fl.Field().String())
}

func validLogoutTarget(
	fl validator.FieldLevel,
) bool {
	v := fl.Field().String()

	return v == AllTargets || IsIdentity(v)
}
