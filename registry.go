package userhome

import (
	"bufio"
	"io"
	"strings"
)

// registryHasUser scans a colon-separated user registry snapshot (one
// account per line, name in the second field, # comments) for the given
// account name.
func registryHasUser(r io.Reader, name string) (bool, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) > 1 && fields[1] == name {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, &OSError{Msg: err.Error()}
	}
	return false, nil
}
