package application

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/artifyhq/artify-backend/internal/domain/entity"
	"github.com/artifyhq/artify-backend/internal/domain/repository"
)

var (
	ErrProjectNameRequired = errors.New("project name is required")
	ErrProjectNotFound     = errors.New("project not found")
	ErrNotProjectOwner     = errors.New("access denied")
)

// ProjectService implements owner-scoped CRUD over projects. Every
// single-project operation checks existence before ownership, so a caller
// can distinguish "no such project" from "not yours".
type ProjectService struct {
	Repo   repository.ProjectRepository
	Logger *logrus.Logger
}

func NewProjectService(repo repository.ProjectRepository, logger *logrus.Logger) *ProjectService {
	return &ProjectService{Repo: repo, Logger: logger}
}

// payloadFalsy reports whether the data field carries no usable value.
// Absent, null, false, zero and empty-string payloads all count as "not
// supplied": create defaults them and update skips them.
func payloadFalsy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return true
	}
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	}
	return false
}

// NormalizePayload converts the request's raw data field to the canonical
// stored form: a JSON string keeps its contents verbatim, any other JSON
// value is stored in its compact encoding, and falsy values become "{}".
func NormalizePayload(raw json.RawMessage) string {
	if payloadFalsy(raw) {
		return "{}"
	}
	trimmed := bytes.TrimSpace(raw)
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return "{}"
	}
	return buf.String()
}

// Create stores a new project for ownerID. The payload is normalized once
// here; the store below never inspects it.
func (s *ProjectService) Create(ownerID int64, name string, data json.RawMessage) (*entity.ProjectSummary, error) {
	if name == "" {
		return nil, ErrProjectNameRequired
	}
	p := &entity.Project{OwnerID: ownerID, Name: name, Data: NormalizePayload(data)}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"project_id": p.ID, "owner_id": ownerID}).Info("project created")
	}
	sum := p.Summary()
	return &sum, nil
}

// ListByOwner returns summaries for every project the caller owns, in no
// guaranteed order.
func (s *ProjectService) ListByOwner(ownerID int64) ([]entity.ProjectSummary, error) {
	projects, err := s.Repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Summary())
	}
	return out, nil
}

// Get returns the full record including the payload, after the
// existence-then-ownership check.
func (s *ProjectService) Get(id, callerID int64) (*entity.ProjectDetail, error) {
	p, err := s.load(id, callerID)
	if err != nil {
		return nil, err
	}
	d := p.Detail()
	return &d, nil
}

// UpdateInput carries the optional update fields as raw JSON so "absent"
// and "empty" can both be detected.
type UpdateInput struct {
	Name string
	Data json.RawMessage
}

// Update applies the supplied fields. An empty name leaves the stored name
// unchanged rather than clearing it, and a falsy data field (absent, null,
// false, zero, empty string) is skipped entirely; both mirror long-standing
// client expectations.
func (s *ProjectService) Update(id, callerID int64, in UpdateInput) (*entity.ProjectSummary, error) {
	if _, err := s.load(id, callerID); err != nil {
		return nil, err
	}
	var upd repository.ProjectUpdate
	if in.Name != "" {
		name := in.Name
		upd.Name = &name
	}
	if !payloadFalsy(in.Data) {
		data := NormalizePayload(in.Data)
		upd.Data = &data
	}
	p, err := s.Repo.Update(id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	sum := p.Summary()
	return &sum, nil
}

// Delete removes the project if it exists and the caller owns it. Deleting
// an id that no longer exists succeeds and reports existed=false, so the
// operation stays idempotent.
func (s *ProjectService) Delete(id, callerID int64) (bool, error) {
	_, err := s.load(id, callerID)
	if errors.Is(err, ErrProjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return s.Repo.Delete(id)
}

func (s *ProjectService) load(id, callerID int64) (*entity.Project, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if p.OwnerID != callerID {
		return nil, ErrNotProjectOwner
	}
	return p, nil
}
