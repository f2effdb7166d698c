package entity

import "time"

// Perspective is a named, persisted snapshot of an entire layout.
// Its lifetime is independent of the live dock tree.
type Perspective struct {
	Name        string
	Description string
	Layout      []byte // Encoded layout state, opaque outside the dock manager
	Created     time.Time
	Modified    time.Time
	Preview     []byte // Optional PNG
}

// PerspectiveInfo summarises a perspective for listings.
type PerspectiveInfo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	LayoutSize  int       `json:"layout_size"`
	HasPreview  bool      `json:"has_preview"`
	IsCurrent   bool      `json:"is_current"`
}

// Info returns the listing summary of p.
func (p *Perspective) Info(current string) PerspectiveInfo {
	return PerspectiveInfo{
		Name:        p.Name,
		Description: p.Description,
		Created:     p.Created,
		Modified:    p.Modified,
		LayoutSize:  len(p.Layout),
		HasPreview:  len(p.Preview) > 0,
		IsCurrent:   p.Name == current,
	}
}

// Clone returns a deep copy so callers cannot alias stored blobs.
func (p *Perspective) Clone() *Perspective {
	if p == nil {
		return nil
	}
	c := *p
	c.Layout = append([]byte(nil), p.Layout...)
	if p.Preview != nil {
		c.Preview = append([]byte(nil), p.Preview...)
	}
	return &c
}

// PerspectiveSet is the complete named map plus the current marker.
type PerspectiveSet struct {
	Current      string
	Perspectives []*Perspective
}
