// Package redis connects to Redis with go-redis/v9 and provides key and
// error helpers shared by Redis-backed stores.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//	key := redis.Key(cfg.KeyPrefix, "products", id)
package redis
