package template

import (
	"encoding/json"
	"fmt"

	"github.com/amonks/focusstudio/task"
)

// DefaultImportName is assigned when an imported document has no name.
const DefaultImportName = "Imported"

// Document is the file-exchange shape for templates. It carries no
// internal id; one is minted on import.
type Document struct {
	Name    string        `json:"name"`
	Tasks   []task.Task   `json:"tasks"`
	Columns []task.Column `json:"columns"`
}

// Export renders the current task list as a shareable template
// document.
func Export(name string, tasks []task.Task) ([]byte, error) {
	doc := Document{
		Name:    name,
		Tasks:   tasks,
		Columns: task.Columns(),
	}
	if doc.Tasks == nil {
		doc.Tasks = []task.Task{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal template: %w", err)
	}
	return data, nil
}

// ParseDocument reads an exported template document into a Template
// with a fresh id. A missing tasks array is treated as empty and a
// missing name defaults to DefaultImportName; malformed JSON is an
// error, and the caller aborts the import with no partial effect.
func ParseDocument(data []byte) (Template, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Template{}, fmt.Errorf("invalid template JSON: %w", err)
	}

	if doc.Name == "" {
		doc.Name = DefaultImportName
	}
	if doc.Tasks == nil {
		doc.Tasks = []task.Task{}
	}

	return New(doc.Name, doc.Tasks), nil
}
