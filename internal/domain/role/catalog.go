package role

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Catalog is the read-only set of job roles served by the process. It is built
// once at startup and shared by every request without locking.
type Catalog struct {
	roles       []JobRole
	lowerTitles []string
	fingerprint string
}

func NewCatalog(roles []JobRole) *Catalog {
	c := &Catalog{
		roles:       make([]JobRole, 0, len(roles)),
		lowerTitles: make([]string, 0, len(roles)),
	}

	h := sha256.New()
	for _, r := range roles {
		r = r.clone()
		c.roles = append(c.roles, r)
		c.lowerTitles = append(c.lowerTitles, strings.ToLower(r.Title))

		h.Write([]byte(r.Title))
		h.Write([]byte{0})
		for _, s := range r.RequiredSkills {
			h.Write([]byte(s))
			h.Write([]byte{1})
		}
		h.Write([]byte{0})
		h.Write([]byte(r.SummaryText()))
		h.Write([]byte{0})
	}
	c.fingerprint = hex.EncodeToString(h.Sum(nil))[:16]

	return c
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.roles)
}

// Role returns a copy of the i-th role in catalog order.
func (c *Catalog) Role(i int) JobRole {
	return c.roles[i].clone()
}

func (c *Catalog) Roles() []JobRole {
	if c == nil {
		return []JobRole{}
	}
	out := make([]JobRole, 0, len(c.roles))
	for _, r := range c.roles {
		out = append(out, r.clone())
	}
	return out
}

// LowerTitle returns the lowercased title of the i-th role.
func (c *Catalog) LowerTitle(i int) string {
	return c.lowerTitles[i]
}

// Fingerprint identifies the catalog content. Two catalogs built from the same
// roles in the same order share a fingerprint.
func (c *Catalog) Fingerprint() string {
	if c == nil {
		return ""
	}
	return c.fingerprint
}
