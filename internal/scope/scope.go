// Package scope carries the organization and the optional tower a request
// operates on. Every organization-owned query is narrowed with a Scope that the
// caller passes explicitly.
package scope

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Request headers carrying the scope.
const (
	HeaderOrganization = "X-Org-ID"
	HeaderType         = "X-Scope-Type"
	HeaderID           = "X-Scope-ID"
)

// Type is the level a scope narrows queries to.
type Type string

const (
	TypeOrganization Type = "ORG"
	TypeTower        Type = "TOWER"
)

var (
	ErrOrganizationMissing = fmt.Errorf("the %s header must be set", HeaderOrganization)
	ErrOrganizationInvalid = fmt.Errorf("the %s header must be a positive integer", HeaderOrganization)
	ErrTypeInvalid         = fmt.Errorf("the %s header must be one of ORG, TOWER", HeaderType)
	ErrIDInvalid           = fmt.Errorf("the %s header must be a positive integer", HeaderID)
	ErrIDMismatch          = fmt.Errorf("for scope type ORG, the %s header must match %s", HeaderID, HeaderOrganization)
	ErrTowerMissing        = errors.New("scope type TOWER requires a tower ID")
)

// Scope is the request context for organization-owned resources.
type Scope struct {
	OrganizationID uint64
	Type           Type
	ID             uint64
}

// Organization returns an organization-wide scope.
func Organization(id uint64) Scope {
	return Scope{OrganizationID: id, Type: TypeOrganization, ID: id}
}

// Tower returns a scope narrowed to one tower of an organization.
func Tower(organizationID, towerID uint64) Scope {
	return Scope{OrganizationID: organizationID, Type: TypeTower, ID: towerID}
}

// TowerID returns the tower the scope is narrowed to, or 0.
func (s Scope) TowerID() uint64 {
	if s.Type == TypeTower {
		return s.ID
	}
	return 0
}

func (s Scope) String() string {
	if s.Type == TypeTower {
		return fmt.Sprintf("organization %d, tower %d", s.OrganizationID, s.ID)
	}
	return fmt.Sprintf("organization %d", s.OrganizationID)
}

func parseID(v string, err error) (uint64, error) {
	id, e := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if e != nil || id == 0 {
		return 0, err
	}
	return id, nil
}

// Parse reads a scope from request headers. The scope type defaults to ORG.
func Parse(h http.Header) (Scope, error) {
	org := h.Get(HeaderOrganization)
	if org == "" {
		return Scope{}, ErrOrganizationMissing
	}

	organizationID, err := parseID(org, ErrOrganizationInvalid)
	if err != nil {
		return Scope{}, err
	}

	t := Type(strings.ToUpper(strings.TrimSpace(h.Get(HeaderType))))
	if t == "" {
		t = TypeOrganization
	}

	var id uint64
	if v := h.Get(HeaderID); v != "" {
		id, err = parseID(v, ErrIDInvalid)
		if err != nil {
			return Scope{}, err
		}
	}

	switch t {
	case TypeOrganization:
		if id != 0 && id != organizationID {
			return Scope{}, ErrIDMismatch
		}
		return Organization(organizationID), nil
	case TypeTower:
		if id == 0 {
			return Scope{}, ErrTowerMissing
		}
		return Tower(organizationID, id), nil
	}

	return Scope{}, ErrTypeInvalid
}

// Apply writes the scope to request headers.
func (s Scope) Apply(h http.Header) {
	h.Set(HeaderOrganization, strconv.FormatUint(s.OrganizationID, 10))

	t := s.Type
	if t == "" {
		t = TypeOrganization
	}
	h.Set(HeaderType, string(t))

	if s.ID != 0 {
		h.Set(HeaderID, strconv.FormatUint(s.ID, 10))
	}
}

// Owned narrows a query to rows of the table that belong to the organization.
func (s Scope) Owned(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s.organization_id = ?", table), s.OrganizationID)
	}
}

// InTower narrows a query on a tower ID column when the scope is a tower scope.
// For organization scopes, the query is returned unchanged.
func (s Scope) InTower(column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if s.Type != TypeTower {
			return db
		}
		return db.Where(fmt.Sprintf("%s = ?", column), s.ID)
	}
}
