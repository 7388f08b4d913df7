// Package pg wraps pgx/v5 pool setup, goose migrations and PostgreSQL error
// classification.
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	version, err := pg.Migrate(ctx, pool, migrationsFS, cfg, log)
//
// Migrations are read from an fs.FS, usually an embed.FS that ships with the
// package owning the schema. IsDuplicateKeyError and friends classify
// *pgconn.PgError values so stores can map them to domain errors.
package pg
