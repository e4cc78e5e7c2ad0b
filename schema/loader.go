package schema

import (
	"fmt"
	"sync"
)

var (
	v1Once sync.Once
	v1Defs map[Kind]*Definition
	v1Err  error
	v2Once sync.Once
	v2Defs map[Kind]*Definition
	v2Err  error
)

// V1Definitions loads the v1 metadata document (userSchema + sessionSchema).
func V1Definitions() (map[Kind]*Definition, error) {
	v1Once.Do(func() {
		v1Defs, v1Err = loadDocument("docs/metadata_v1.json", V1)
	})
	return v1Defs, v1Err
}

// V2Definitions loads the v2 metadata document. v2 drops the sleep-score
// session fields in favor of typed sessions, replaces sex with gender on
// the user profile, and introduces tagSchema for tagged intervals.
func V2Definitions() (map[Kind]*Definition, error) {
	v2Once.Do(func() {
		v2Defs, v2Err = loadDocument("docs/metadata_v2.json", V2)
	})
	return v2Defs, v2Err
}

func loadDocument(name string, version Version) (map[Kind]*Definition, error) {
	b, err := FS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", name, err)
	}
	defs, err := ParseDocument(name, b, version)
	if err != nil {
		return nil, fmt.Errorf("compile document %s: %w", name, err)
	}
	return defs, nil
}
