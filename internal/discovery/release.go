// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"bufio"
	"os"
	"strings"
)

// releaseFileName is the metadata file JDK images ship at their root.
const releaseFileName = "release"

// Keys of interest in a release file.
const (
	releaseKeyVersion     = "JAVA_VERSION"
	releaseKeyImplementor = "IMPLEMENTOR"
	releaseKeyArch        = "OS_ARCH"
	releaseKeyImageType   = "IMAGE_TYPE"
)

// parseReleaseFile reads a KEY=VALUE (or KEY: VALUE) metadata file. Values
// may be double-quoted. Lines matching neither form, blank lines and
// comments are ignored rather than treated as errors.
func parseReleaseFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries := make(map[string]string)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := splitReleaseLine(line)
		if !ok {
			continue
		}
		entries[key] = value
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// splitReleaseLine splits one line on '=' or ': ', whichever comes first.
func splitReleaseLine(line string) (key, value string, ok bool) {
	eq := strings.Index(line, "=")
	colon := strings.Index(line, ":")
	switch {
	case eq >= 0 && (colon < 0 || eq < colon):
		key, value = line[:eq], line[eq+1:]
	case colon >= 0:
		key, value = line[:colon], line[colon+1:]
	default:
		return "", "", false
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	value = strings.Trim(value, `"`)
	return key, value, true
}
