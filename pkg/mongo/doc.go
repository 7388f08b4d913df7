// Package mongo connects to MongoDB using the official v2 driver.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer db.Client().Disconnect(context.Background())
//
// Connection settings come from MONGODB_* environment variables via Config.
// IsDuplicateKeyError and IsNotFoundError classify driver errors.
package mongo
