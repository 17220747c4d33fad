package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const DefaultSortField = "date_created"

// ListQuery holds ?search= ?field= ?sort= ?page= of a list endpoint.
type ListQuery struct {
	Search string
	Field  string
	Sort   string
	Page   string
	Paged  bool
	// ThenBy orders rows that share the same Field value, in the same direction.
	ThenBy string
}

// ParseListQuery reads the list parameters. field must be one of allowedFields;
// the first allowed field is used when DefaultSortField is not among them.
func ParseListQuery(c *fiber.Ctx, allowedFields ...string) (ListQuery, error) {
	q := ListQuery{
		Search: strings.TrimSpace(c.Query("search")),
		Field:  strings.TrimSpace(c.Query("field")),
		Sort:   strings.ToLower(strings.TrimSpace(c.Query("sort"))),
	}

	if args := c.Context().QueryArgs(); args.Has("page") {
		q.Page = string(args.Peek("page"))
		q.Paged = true
	}

	if q.Field == "" {
		q.Field = DefaultSortField
		if !contains(allowedFields, q.Field) && len(allowedFields) > 0 {
			q.Field = allowedFields[0]
		}
	}
	if !contains(allowedFields, q.Field) {
		return ListQuery{}, ErrValidation("field must be one of: %s", strings.Join(allowedFields, ", "))
	}

	switch q.Sort {
	case "":
		q.Sort = "desc"
	case "asc", "desc":
	default:
		return ListQuery{}, ErrValidation("sort must be asc or desc")
	}
	return q, nil
}

// ApplySearch adds a case-insensitive substring filter on column.
func (q ListQuery) ApplySearch(db *gorm.DB, column string) *gorm.DB {
	if q.Search == "" {
		return db
	}
	pattern := "%" + escapeLike(strings.ToLower(q.Search)) + "%"
	return db.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", pattern)
}

// ApplyOrder orders by the validated field, qualified with table.
func (q ListQuery) ApplyOrder(db *gorm.DB, table string) *gorm.DB {
	dir := " " + strings.ToUpper(q.Sort)
	db = db.Order(qualify(table, q.Field) + dir)
	if q.ThenBy != "" && q.ThenBy != q.Field {
		db = db.Order(qualify(table, q.ThenBy) + dir)
	}
	return db
}

func qualify(table, col string) string {
	if table == "" {
		return col
	}
	return table + "." + col
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Fetch loads the list described by q into dest: the full list when ?page is
// absent, otherwise one page of PageSize rows. scopes (preloads) only apply to
// the row query, never to the count. page is nil for the full list.
func (q ListQuery) Fetch(base *gorm.DB, table string, dest any, scopes ...func(*gorm.DB) *gorm.DB) (page *Page, total int64, err error) {
	base = base.Session(&gorm.Session{})

	if !q.Paged {
		if err := q.ApplyOrder(base, table).Scopes(scopes...).Find(dest).Error; err != nil {
			return nil, 0, ErrInternal(err)
		}
		return nil, 0, nil
	}

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, ErrInternal(err)
	}
	p, err := Paginate(total, q.Page)
	if err != nil {
		return nil, 0, err
	}
	if err := q.ApplyOrder(base, table).Scopes(scopes...).Offset(p.Offset).Limit(p.Limit).Find(dest).Error; err != nil {
		return nil, 0, ErrInternal(err)
	}
	return &p, total, nil
}

// NewestFirst reads only ?page=; the order is fixed to date_created DESC.
func NewestFirst(c *fiber.Ctx) ListQuery {
	q := ListQuery{Field: DefaultSortField, Sort: "desc"}
	if args := c.Context().QueryArgs(); args.Has("page") {
		q.Page = string(args.Peek("page"))
		q.Paged = true
	}
	return q
}
