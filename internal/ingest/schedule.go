package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schedule maps game ids to tip-off timestamps in UTC seconds.
type Schedule struct {
	Games map[string]int64 `yaml:"games"`
}

func LoadSchedule(path string) (Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schedule{}, fmt.Errorf("open schedule: %w", err)
	}
	var s Schedule
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schedule{}, fmt.Errorf("parse schedule %s: %w", path, err)
	}
	if len(s.Games) == 0 {
		return Schedule{}, fmt.Errorf("schedule %s lists no games", path)
	}
	return s, nil
}
