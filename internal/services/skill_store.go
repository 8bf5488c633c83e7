package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSkills is written to the skills file when it does not exist yet.
var DefaultSkills = []string{
	"Python", "Java", "C++", "SQL", "HTML", "CSS", "JavaScript",
	"React", "Django", "Machine Learning", "Data Analysis", "AWS",
	"Git", "TensorFlow", "PyTorch",
}

type SkillStore interface {
	EnsureFile() error
	Load() ([]string, error)
	Path() string
}

type skillStore struct {
	path string
}

func NewSkillStore(path string) SkillStore {
	return &skillStore{
		path: path,
	}
}

func (s *skillStore) Path() string {
	return s.path
}

// EnsureFile seeds the skills file with DefaultSkills if it is missing.
// An existing file is never touched.
func (s *skillStore) EnsureFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: failed to stat skills file: %w", ErrSkillStore, err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create skills directory: %w", ErrSkillStore, err)
		}
	}

	content := strings.Join(DefaultSkills, "\n")
	if err := os.WriteFile(s.path, []byte(content), 0644); err != nil {
		return fmt.Errorf("%w: failed to write default skills: %w", ErrSkillStore, err)
	}

	return nil
}

// Load returns the skills in file order, one per line, trimmed.
// Blank lines are skipped.
func (s *skillStore) Load() ([]string, error) {
	if err := s.EnsureFile(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read skills file: %w", ErrSkillStore, err)
	}

	lines := strings.Split(string(data), "\n")
	skills := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		skills = append(skills, line)
	}

	return skills, nil
}
