package entity

import "time"

// Project is a named design document owned by a single user. Data is an
// opaque serialized canvas payload; the backend stores it verbatim and never
// inspects it.
type Project struct {
	ID        int64
	OwnerID   int64
	Name      string
	Data      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProjectSummary omits the payload. Used for list, create and update
// responses where clients only need metadata.
type ProjectSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProjectDetail is the full record including the payload.
type ProjectDetail struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Data      string    `json:"data"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Project) Summary() ProjectSummary {
	return ProjectSummary{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}

func (p *Project) Detail() ProjectDetail {
	return ProjectDetail{ID: p.ID, Name: p.Name, Data: p.Data, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}
