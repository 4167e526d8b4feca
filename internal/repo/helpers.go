package repo

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Text conversions between pointer-optionals and pgtype.
func toNullText(p *string) pgtype.Text {
	if p == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *p, Valid: true}
}

func fromNullText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
