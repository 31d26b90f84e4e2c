package migrations

import (
	"context"

	"github.com/uptrace/bun"

	"flag-quiz-service/internal/catalog"
	"flag-quiz-service/internal/domain"
)

type countryRow struct {
	bun.BaseModel `bun:"table:countries"`

	Code       string                     `bun:"code,pk"`
	Position   int                        `bun:"position"`
	Names      map[domain.Language]string `bun:"names,type:jsonb"`
	FlagURL    string                     `bun:"flag_url"`
	Difficulty string                     `bun:"difficulty"`
}

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			countries := catalog.Countries()
			rows := make([]countryRow, 0, len(countries))
			for i, c := range countries {
				rows = append(rows, countryRow{
					Code:       c.Code,
					Position:   i,
					Names:      c.Names,
					FlagURL:    c.FlagURL,
					Difficulty: string(c.Difficulty),
				})
			}
			_, err := db.NewInsert().Model(&rows).On("CONFLICT (code) DO NOTHING").Exec(ctx)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			codes := make([]string, 0)
			for _, c := range catalog.Countries() {
				codes = append(codes, c.Code)
			}
			_, err := db.NewDelete().Model((*countryRow)(nil)).Where("code IN (?)", bun.In(codes)).Exec(ctx)
			return err
		},
	)
}
