package site

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

var validExperienceTypes = map[string]bool{
	"internship": true,
	"research":   true,
	"project":    true,
}

type ContentCache struct {
	contentFile string
	content     *Content
	mu          sync.RWMutex
}

func NewContentCache(contentFile string) *ContentCache {
	return &ContentCache{
		contentFile: contentFile,
	}
}

func (cc *ContentCache) Run() error {
	content, err := cc.LoadContent()
	if err != nil {
		return err
	}

	slog.Debug("Content loaded",
		"file", cc.contentFile,
		"experiences", len(content.Experiences),
		"projects", len(content.Projects))

	return nil
}

// LoadContent re-reads the content file and replaces the cached copy only if it is valid.
func (cc *ContentCache) LoadContent() (*Content, error) {
	content, err := cc.parseContent(cc.contentFile)
	if err != nil {
		return nil, err
	}

	if err := cc.validateContent(content); err != nil {
		return nil, fmt.Errorf("invalid content %s: %w", cc.contentFile, err)
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.content = content

	return content, nil
}

func (cc *ContentCache) GetContent() (*Content, error) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	if cc.content == nil {
		return nil, fmt.Errorf("content from '%s' not loaded", cc.contentFile)
	}
	return cc.content, nil
}

func (cc *ContentCache) parseContent(contentFile string) (*Content, error) {
	data, err := os.ReadFile(contentFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range content.Experiences {
		if content.Experiences[i].Type == "" {
			content.Experiences[i].Type = "project"
		}
	}

	return &content, nil
}

func (cc *ContentCache) validateContent(content *Content) error {
	if content == nil {
		return fmt.Errorf("content is nil")
	}

	if content.Profile.Name == "" {
		return fmt.Errorf("profile name is required")
	}

	if content.Profile.BirthDate != "" {
		if _, err := ParseBirthDate(content.Profile.BirthDate); err != nil {
			return fmt.Errorf("invalid birth date: %w", err)
		}
	}

	for i, experience := range content.Experiences {
		if !validExperienceTypes[experience.Type] {
			return fmt.Errorf("invalid experience type at index %d: %s", i, experience.Type)
		}
	}

	for i, group := range content.SkillGroups {
		for _, skill := range group.Skills {
			if skill.Level < 0 || skill.Level > 100 {
				return fmt.Errorf("skill %q in group %d must have a level between 0 and 100", skill.Name, i)
			}
		}
	}

	seen := make(map[string]bool, len(content.Projects))
	for i, project := range content.Projects {
		requiredFields := map[string]string{
			"id":    project.ID,
			"title": project.Title,
		}
		for fieldName, fieldValue := range requiredFields {
			if fieldValue == "" {
				return fmt.Errorf("project at index %d: %s is required", i, fieldName)
			}
		}

		if !IsProjectCategory(project.Category) {
			return fmt.Errorf("invalid project category at index %d: %s", i, project.Category)
		}

		if seen[project.ID] {
			return fmt.Errorf("duplicate project id: %s", project.ID)
		}
		seen[project.ID] = true
	}

	return nil
}
