package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/hivescript/pkg/hivescript"
)

//go:embed all:templates
var templatesFS embed.FS

// DefaultTemplate is used when no template is named.
const DefaultTemplate = "basic"

// templateDescriptions are shown by init --list and the interactive picker.
var templateDescriptions = map[string]string{
	"basic": "Config file and one example script",
	"etl":   "Params file, jar exclusion, custom directive, strict mode",
}

// Describe returns a one-line description of a template, or "" if unknown.
func Describe(templateName string) string {
	return templateDescriptions[templateName]
}

// Scaffolder handles project initialization from templates
type Scaffolder struct {
	logger hivescript.Logger
}

// NewScaffolder creates a new Scaffolder instance
func NewScaffolder(logger hivescript.Logger) *Scaffolder {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scaffolder{logger: logger}
}

// CreateProject writes templateName into targetPath and returns the created
// files relative to targetPath, in lexical order.
func (s *Scaffolder) CreateProject(projectName, templateName, targetPath string) ([]string, error) {
	templatePath := path.Join("templates", templateName)
	if _, err := templatesFS.ReadDir(templatePath); err != nil {
		return nil, fmt.Errorf("template '%s' not found (available: %s): %w",
			templateName, strings.Join(mustListTemplates(), ", "), hivescript.ErrInvalidConfig)
	}

	isEmpty, err := isDirectoryEmpty(targetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check target directory: %w", err)
	}
	if !isEmpty {
		return nil, fmt.Errorf("target directory '%s' is not empty\n\nhivescript init requires an empty directory to avoid overwriting existing files: %w",
			targetPath, hivescript.ErrInvalidConfig)
	}

	if err := os.MkdirAll(targetPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create project directory: %w", err)
	}

	s.logger.Verbose("Creating project '%s' at %s with template '%s'", projectName, targetPath, templateName)

	created, err := s.copyTemplateFiles(templatePath, targetPath, projectName)
	if err != nil {
		return nil, fmt.Errorf("failed to copy template files: %w", err)
	}

	s.logger.Verbose("Project created successfully")
	return created, nil
}

// copyTemplateFiles recursively copies files from embedded template to target directory
func (s *Scaffolder) copyTemplateFiles(templatePath, targetPath, projectName string) ([]string, error) {
	var created []string

	err := fs.WalkDir(templatesFS, templatePath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == templatePath {
			return nil
		}

		relPath := strings.TrimPrefix(p, templatePath+"/")
		targetFilePath := filepath.Join(targetPath, filepath.FromSlash(relPath))

		if d.IsDir() {
			s.logger.Verbose("Creating directory: %s", relPath)
			return os.MkdirAll(targetFilePath, 0755)
		}

		content, err := templatesFS.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", p, err)
		}

		s.logger.Verbose("Creating file: %s", relPath)
		if err := os.WriteFile(targetFilePath, []byte(processTemplate(string(content), projectName)), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetFilePath, err)
		}
		created = append(created, relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(created)
	return created, nil
}

// processTemplate replaces template variables in content.
// ${name} placeholders are script syntax and are left alone.
func processTemplate(content, projectName string) string {
	return strings.ReplaceAll(content, "{{PROJECT_NAME}}", projectName)
}

// ListTemplates returns available template names
func ListTemplates() ([]string, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	var templates []string
	for _, entry := range entries {
		if entry.IsDir() {
			templates = append(templates, entry.Name())
		}
	}
	return templates, nil
}

func mustListTemplates() []string {
	templates, err := ListTemplates()
	if err != nil {
		return nil
	}
	return templates
}

// isDirectoryEmpty checks if a directory is empty or doesn't exist.
// Returns (true, nil) if directory doesn't exist or is empty.
// Returns (false, nil) if directory exists and contains files/subdirectories.
// Returns (false, error) if there's an error checking the directory.
func isDirectoryEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check directory: %w", err)
	}

	if !info.IsDir() {
		return false, fmt.Errorf("path exists but is not a directory")
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("failed to read directory: %w", err)
	}
	return len(entries) == 0, nil
}
