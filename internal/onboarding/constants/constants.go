/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package constants defines the onboarding paths and the constants shared by the onboarding packages.
package constants

import (
	"errors"
	"fmt"
)

// Path identifies one of the onboarding flows a user follows.
type Path string

const (
	// PathBusiness is the onboarding path for business accounts.
	PathBusiness Path = "business"
	// PathPersonal is the onboarding path for personal (leisure) accounts.
	PathPersonal Path = "personal"
)

// UserType is the integer encoding of the user type answer recorded during onboarding.
type UserType int

const (
	// UserTypeBusiness is the recorded answer for a business account.
	UserTypeBusiness UserType = 0
	// UserTypePersonal is the recorded answer for a personal account.
	UserTypePersonal UserType = 1
)

// UserTypeAnswerKey is the answer key that legacy step conditions use to gate a step on the user type.
const UserTypeAnswerKey = "userType"

// ErrInvalidPath is returned when a value does not name a known onboarding path.
var ErrInvalidPath = errors.New("invalid onboarding path")

// AllPaths returns the onboarding paths in declaration order.
func AllPaths() []Path {
	return []Path{PathBusiness, PathPersonal}
}

// ParsePath converts a path name into a Path. Only the exact names are accepted.
func ParsePath(value string) (Path, error) {
	switch Path(value) {
	case PathBusiness:
		return PathBusiness, nil
	case PathPersonal:
		return PathPersonal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, value)
	}
}

// IsValid reports whether the path is one of the known paths.
func (p Path) IsValid() bool {
	_, err := ParsePath(string(p))
	return err == nil
}

// String returns the path name.
func (p Path) String() string {
	return string(p)
}

// UserType returns the recorded answer value that selects this path.
func (p Path) UserType() (UserType, bool) {
	switch p {
	case PathBusiness:
		return UserTypeBusiness, true
	case PathPersonal:
		return UserTypePersonal, true
	default:
		return 0, false
	}
}

// UnmarshalText decodes a path name, rejecting unknown values.
func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := ParsePath(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText encodes the path name.
func (p Path) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, string(p))
	}
	return []byte(p), nil
}

// PathForUserType returns the path selected by a recorded user type answer.
func PathForUserType(userType UserType) (Path, bool) {
	switch userType {
	case UserTypeBusiness:
		return PathBusiness, true
	case UserTypePersonal:
		return PathPersonal, true
	default:
		return "", false
	}
}
