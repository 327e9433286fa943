package constant

import "fmt"

const (
	sessionKeyPrefix = "session:"
)

func VariantCacheKey(productID uint64) string {
	return fmt.Sprintf("variants:product:%d", productID)
}

func SelectionKey(sessionID string, productID uint64) string {
	return fmt.Sprintf("selection:%s:%d", sessionID, productID)
}

func SessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
