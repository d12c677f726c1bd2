// Package rtdb contains the concrete implementation of the persistence layer
// using the Firebase Realtime Database.
//
// Every collection lives under the owning user's partition:
//
//	users/{uid}/{collection}
//	users/{uid}/{collection}/{skuId}   (per-SKU report logs)
//
// Record keys are the push keys generated by the database.
package rtdb

import (
	"fmt"

	"firebase.google.com/go/v4/db"
)

// collectionRef returns the reference to a user's collection.
func collectionRef(client *db.Client, ownerUID, collection string) *db.Ref {
	return client.NewRef(fmt.Sprintf("users/%s/%s", ownerUID, collection))
}

// recordRef returns the reference to a single record inside a collection.
func recordRef(client *db.Client, ownerUID, collection, key string) *db.Ref {
	return client.NewRef(fmt.Sprintf("users/%s/%s/%s", ownerUID, collection, key))
}

// logRef returns the reference to a per-SKU report log.
func logRef(client *db.Client, ownerUID, collection, skuID string) *db.Ref {
	return client.NewRef(fmt.Sprintf("users/%s/%s/%s", ownerUID, collection, skuID))
}
