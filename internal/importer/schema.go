package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a case import file: one
// case with its composition history and case-scoped records.
type ImportSchema struct {
	Case               CaseImport       `json:"case"`
	CompositionHistory []SnapshotImport `json:"composition_history,omitempty"`
	Notes              []NoteImport     `json:"notes,omitempty"`
	Tasks              []TaskImport     `json:"tasks,omitempty"`
	Schedule           []ScheduleImport `json:"schedule,omitempty"`
}

// CaseImport defines the case-level fields. A missing id is generated.
type CaseImport struct {
	ID          string  `json:"id,omitempty"`
	ClientName  string  `json:"client_name"`
	AssignedTo  string  `json:"assigned_to,omitempty"`
	Status      string  `json:"status,omitempty"`
	Description string  `json:"description,omitempty"`
	AvatarURL   string  `json:"avatar_url,omitempty"`
	DateOpened  *string `json:"date_opened,omitempty"`
	LastUpdate  *string `json:"last_update,omitempty"`
}

// SnapshotImport defines one composition snapshot.
type SnapshotImport struct {
	ID            string                  `json:"id,omitempty"`
	EffectiveDate string                  `json:"effective_date"`
	Notes         string                  `json:"notes,omitempty"`
	FamilyUnit    []FamilyMemberImport    `json:"family_unit,omitempty"`
	HouseholdUnit []HouseholdMemberImport `json:"household_unit,omitempty"`
}

// PersonImport holds the fields shared by family and household members.
// Person ids are required: graph edges refer to them.
type PersonImport struct {
	ID          string  `json:"id"`
	FullName    string  `json:"full_name"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Gender      string  `json:"gender,omitempty"`
}

type FamilyMemberImport struct {
	PersonImport
	RelationshipToCaseHolder string `json:"relationship_to_case_holder,omitempty"`
}

type HouseholdMemberImport struct {
	PersonImport
	IsFamilyMember    bool   `json:"is_family_member,omitempty"`
	CohabitationNotes string `json:"cohabitation_notes,omitempty"`
}

type NoteImport struct {
	ID      string   `json:"id,omitempty"`
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content"`
	Date    string   `json:"date"`
	Tags    []string `json:"tags,omitempty"`
}

type TaskImport struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"due_date"`
	Status      string   `json:"status,omitempty"`
	Location    string   `json:"location,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type ScheduleImport struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end,omitempty"`
	Type        string `json:"type,omitempty"`
	Location    string `json:"location,omitempty"`
	AllDay      bool   `json:"all_day,omitempty"`
}

// LoadImportSchema reads and parses a case import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

// ParseImportSchema parses a case import document.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
