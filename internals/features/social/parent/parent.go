// Package parent addresses the object a comment, reaction or image hangs off.
//
// Rows keep the nullable id_request/id_support pair plus object_type; a Ref is
// the only way handlers build or filter them, so exactly one id is ever set.
package parent

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "mutualaid_backend/internals/helpers"
)

type Kind int

const (
	KindRequest Kind = 0
	KindSupport Kind = 1
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindSupport:
		return "support"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

type Ref struct {
	Kind Kind
	ID   uint
}

func Request(id uint) Ref { return Ref{Kind: KindRequest, ID: id} }
func Support(id uint) Ref { return Ref{Kind: KindSupport, ID: id} }

// Columns is the (id_request, id_support, object_type) triple of a child row.
type Columns struct {
	IDRequest  *uint
	IDSupport  *uint
	ObjectType int
}

func (r Ref) Columns() Columns {
	id := r.ID
	if r.Kind == KindSupport {
		return Columns{IDSupport: &id, ObjectType: int(KindSupport)}
	}
	return Columns{IDRequest: &id, ObjectType: int(KindRequest)}
}

func (r Ref) idColumn() string {
	if r.Kind == KindSupport {
		return "id_support"
	}
	return "id_request"
}

func (r Ref) table() string {
	if r.Kind == KindSupport {
		return "supports"
	}
	return "requests"
}

// Apply scopes a query on a child table to this parent.
func (r Ref) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(r.idColumn()+" = ? AND object_type = ?", r.ID, int(r.Kind))
}

// Exists reports whether the parent row is present. Soft-deleted parents count as present.
func (r Ref) Exists(ctx context.Context, db *gorm.DB) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Table(r.table()).Where(r.idColumn()+" = ?", r.ID).Count(&n).Error
	return n > 0, err
}

// NotFoundMessage is the client message when the parent does not exist.
func (r Ref) NotFoundMessage() string {
	if r.Kind == KindSupport {
		return fmt.Sprintf("Support ID %d does not exist", r.ID)
	}
	return fmt.Sprintf("Request ID %d does not exist", r.ID)
}

// ParamName is the route parameter carrying the parent id.
func (k Kind) ParamName() string {
	if k == KindSupport {
		return "id_support"
	}
	return "id_request"
}

// FromParam reads the parent id from its route parameter.
func FromParam(c *fiber.Ctx, k Kind) (Ref, error) {
	id, err := helper.ParseIDParam(c, k.ParamName())
	if err != nil {
		return Ref{}, err
	}
	return Ref{Kind: k, ID: id}, nil
}

// MustExist returns a not-found error when the parent row is missing.
func (r Ref) MustExist(ctx context.Context, db *gorm.DB) error {
	ok, err := r.Exists(ctx, db)
	if err != nil {
		return helper.ErrInternal(err)
	}
	if !ok {
		return helper.ErrNotFound("%s", r.NotFoundMessage())
	}
	return nil
}
