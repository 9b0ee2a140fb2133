package cache

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

type Key string

type Cache interface {
	Get(ctx context.Context, key Key) (string, error, bool)
	Set(ctx context.Context, key Key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...Key) error
	DelWithPrefix(ctx context.Context, prefix Key) error
}

func GetEndpointKey(u *url.URL, userId *string) Key {

	if userId != nil && *userId != "" {
		return Key(fmt.Sprintf("endpoint:%s:%s", u.RequestURI(), *userId))
	}

	return Key(fmt.Sprintf("endpoint:%s", u.RequestURI()))
}

// GetEndpointKeyWithPrefix builds a key prefix from a request path. Keys
// start with the request uri so that deleting by prefix wipes the cached
// responses of every user and query string under the path.
func GetEndpointKeyWithPrefix(path string, userId *string) Key {

	if userId != nil && *userId != "" {
		return Key(fmt.Sprintf("endpoint:%s:%s", path, *userId))
	}

	return Key(fmt.Sprintf("endpoint:%s", path))
}

func GetHashKey(hash string) Key {
	return Key(fmt.Sprintf("newsletters:hash:%s", hash))
}
