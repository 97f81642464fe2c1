// SPDX-License-Identifier: MPL-2.0

package compiler

import (
	"context"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SelfVersion is this package's own declared compatibility version. It is
// the fallback when the installed compiler's version cannot be discovered:
// the version check is a courtesy gate, so "unknown" degrades to "whatever
// this tool was built against" rather than failing hard.
const SelfVersion = "2.3.18"

// versionPattern matches the compiler's --check stdout contract:
// a line of the form "jamovi X.Y.Z found ...".
var versionPattern = regexp.MustCompile(`jamovi (\d+\.\d+\.\d+) found`)

// ParseReportedVersion scans the captured --check output for the version
// line and returns the parsed version. The boolean reports whether a
// matching line was found; absence is "not found", not an error.
func ParseReportedVersion(output string) (*semver.Version, bool) {
	for _, line := range strings.Split(output, "\n") {
		m := versionPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		version, err := semver.NewVersion(m[1])
		if err != nil {
			continue
		}
		return version, true
	}
	return nil, false
}

// InstalledVersion reports the installed external compiler's version by
// invoking it with --check and parsing its output. When the compiler cannot
// be launched or reports nothing recognizable, the declared SelfVersion is
// returned instead.
func (c *Client) InstalledVersion(ctx context.Context) *semver.Version {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	result, err := c.exec.RunCapture(ctx, c.executable(), []string{FlagCheck})
	if err != nil {
		c.logger.Debug("version discovery failed, using declared version",
			"compiler", c.executable(), "error", err)
		return semver.MustParse(SelfVersion)
	}

	version, found := ParseReportedVersion(result.Output)
	if !found {
		c.logger.Debug("no version line in compiler output, using declared version",
			"compiler", c.executable())
		return semver.MustParse(SelfVersion)
	}

	c.logger.Debug("discovered installed jamovi version", "version", version)
	return version
}
