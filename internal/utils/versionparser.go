package utils

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsNewerVersion compares two semantic versions and returns true if remote > local.
func IsNewerVersion(remote, local string) (bool, error) {
	if !IsSemver(remote) || !IsSemver(local) {
		return false, errors.New("invalid semantic version format (expected x.y.z)")
	}

	rParts := strings.Split(remote, ".")
	lParts := strings.Split(local, ".")

	for i := 0; i < 3; i++ {
		rNum, _ := strconv.Atoi(rParts[i])
		lNum, _ := strconv.Atoi(lParts[i])

		switch {
		case rNum > lNum:
			return true, nil
		case rNum < lNum:
			return false, nil
		}
	}

	return false, nil
}

// IsSemver returns true if the string is a valid semver (x.y.z).
func IsSemver(v string) bool {
	return semverPattern.MatchString(v)
}
